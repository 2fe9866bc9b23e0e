package router

import (
	"github.com/shiptrack-next/internal/config"
	adminhandlers "github.com/shiptrack-next/internal/http/handlers/admin"
	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		shipments := apiV1.Group("/shipments")
		{
			// 出货订单
			orders := shipments.Group("/orders")
			{
				orders.GET("", adminHandler.ListOrders)
				orders.GET("/:order_code", adminHandler.GetOrder)
				orders.PUT("/:order_code", adminHandler.UpdateOrder)
				orders.GET("/:order_code/first-leg-tracking/nodes", adminHandler.ListTrackingNodes)
				orders.GET("/:order_code/provider-tracking", adminHandler.ListProviderTracking)
			}

			// 头程轨迹审核
			tracking := shipments.Group("/first-leg-tracking")
			{
				tracking.GET("/orders", adminHandler.ListPendingOrders)
				tracking.POST("/:id/review", adminHandler.SubmitReview)
				tracking.POST("/nodes", adminHandler.AddManualNode)
			}

			// 订单异常
			exceptions := shipments.Group("/exceptions")
			{
				exceptions.GET("", adminHandler.ListExceptions)
				exceptions.GET("/logs", adminHandler.ListExceptionLogs)
				exceptions.POST("/:id/processing", adminHandler.ProcessException)
			}
		}
	}

	return r
}
