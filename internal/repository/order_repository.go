package repository

import (
	"errors"
	"time"

	"github.com/shiptrack-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 出货订单数据访问接口
type OrderRepository interface {
	Create(order *models.ShipmentOrder) error
	List(filter OrderListFilter) ([]OrderListRow, PageResult, error)
	GetByCode(orderCode string) (*models.ShipmentOrder, error)
	UpdateByCode(orderCode string, updates map[string]interface{}) error
}

// OrderListRow 订单列表行投影
type OrderListRow struct {
	OrderCode              string     `json:"orderCode"`
	FirstLegTrackingNumber string     `json:"firstLegTrackingNumber"`
	LastMileTrackingNumber *string    `json:"lastMileTrackingNumber"`
	CountryCode            *string    `json:"countryCode"`
	WarehouseCode          string     `json:"warehouseCode"`
	ShipmentName           string     `json:"shipmentName"`
	ProviderCode           string     `json:"providerCode"`
	ShippingChannel        *string    `json:"shippingChannel"`
	ShippingMethod         *string    `json:"shippingMethod"`
	ShippingStatus         string     `json:"shippingStatus"`
	BoxNum                 *int       `json:"boxNum"`
	ShippingDate           *time.Time `json:"shippingDate"`
	DepartureDate          *time.Time `json:"departureDate"`
	PortArrivalDate        *time.Time `json:"portArrivalDate"`
	DeliveryDate           *time.Time `json:"deliveryDate"`
	SignedDate             *time.Time `json:"signedDate"`
	SignedNum              *int       `json:"signedNum"`
	ShelvedTime            *time.Time `json:"shelvedTime"`
	IsException            *int       `json:"isException"`
	CreateTime             time.Time  `json:"createTime"`
}

var orderListColumns = []string{
	"order_code",
	"first_leg_tracking_number",
	"last_mile_tracking_number",
	"country_code",
	"warehouse_code",
	"shipment_name",
	"provider_code",
	"shipping_channel",
	"shipping_method",
	"shipping_status",
	"box_num",
	"shipping_date",
	"departure_date",
	"port_arrival_date",
	"delivery_date",
	"signed_date",
	"signed_num",
	"shelved_time",
	"is_exception",
	"create_time",
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.ShipmentOrder) error {
	return r.db.Create(order).Error
}

// List 出货订单列表
// 订单号 / 头程追踪号 / 尾程追踪号为模糊匹配（主列表的常用检索方式），
// 其余字符串条件为精确匹配。计数查询每请求执行一次，
// 页码超出总页数时直接返回空内容，不执行明细查询。
func (r *GormOrderRepository) List(filter OrderListFilter) ([]OrderListRow, PageResult, error) {
	query := r.applyFilter(r.db.Model(&models.ShipmentOrder{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageResult{}, err
	}
	page := NewPageResult(total, filter.PageNum, filter.PageSize)

	rows := make([]OrderListRow, 0)
	if page.OutOfRange() {
		return rows, page, nil
	}

	query = applyPagination(query.Select(orderListColumns), page.PageNum, page.PageSize)
	if err := query.Order("create_time desc").Scan(&rows).Error; err != nil {
		return nil, PageResult{}, err
	}
	return rows, page, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter OrderListFilter) *gorm.DB {
	query = applyContains(query, "order_code", filter.OrderCode)
	query = applyContains(query, "first_leg_tracking_number", filter.FirstLegTrackingNumber)
	query = applyContains(query, "last_mile_tracking_number", filter.LastMileTrackingNumber)
	query = applyEqual(query, "shipment_name", filter.ShipmentName)
	query = applyEqual(query, "provider_code", filter.ProviderCode)
	query = applyEqual(query, "shipping_method", filter.ShippingMethod)
	query = applyEqual(query, "shipping_status", filter.ShippingStatus)
	query = applyEqual(query, "country_code", filter.CountryCode)
	query = applyEqual(query, "warehouse_code", filter.WarehouseCode)
	query = applyBoolEqual(query, "is_exception", filter.IsException)
	query = applyBetween(query, "shipping_date", filter.ShippingDate)
	query = applyBetween(query, "departure_date", filter.DepartureDate)
	query = applyBetween(query, "port_arrival_date", filter.PortArrivalDate)
	query = applyBetween(query, "delivery_date", filter.DeliveryDate)
	query = applyBetween(query, "signed_date", filter.SignedDate)
	return query
}

// GetByCode 按订单号获取订单详情，不存在时返回 nil
func (r *GormOrderRepository) GetByCode(orderCode string) (*models.ShipmentOrder, error) {
	var order models.ShipmentOrder
	if err := r.db.Where("order_code = ?", orderCode).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateByCode 按订单号整体覆盖业务字段
func (r *GormOrderRepository) UpdateByCode(orderCode string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["update_time"] = time.Now()
	return r.db.Model(&models.ShipmentOrder{}).
		Where("order_code = ?", orderCode).
		Updates(updates).Error
}
