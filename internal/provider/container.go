package provider

import (
	"github.com/shiptrack-next/internal/config"
	"github.com/shiptrack-next/internal/repository"
	"github.com/shiptrack-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	OrderRepo     repository.OrderRepository
	TrackingRepo  repository.TrackingRepository
	ExceptionRepo repository.ExceptionRepository

	// Services
	OrderService     *service.OrderService
	TrackingService  *service.TrackingService
	ExceptionService *service.ExceptionService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	c.OrderRepo = repository.NewOrderRepository(c.DB)
	c.TrackingRepo = repository.NewTrackingRepository(c.DB)
	c.ExceptionRepo = repository.NewExceptionRepository(c.DB)
}

func (c *Container) initServices() {
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.TrackingService = service.NewTrackingService(c.TrackingRepo, c.OrderRepo)
	c.ExceptionService = service.NewExceptionService(c.ExceptionRepo)
}
