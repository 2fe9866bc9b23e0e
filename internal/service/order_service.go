package service

import (
	"strings"
	"time"

	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/models"
	"github.com/shiptrack-next/internal/repository"
)

// OrderService 出货订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListOrders 出货订单列表
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]repository.OrderListRow, repository.PageResult, error) {
	rows, page, err := s.orderRepo.List(filter)
	if err != nil {
		logger.Errorw("order_list_failed", "error", err)
		return nil, repository.PageResult{}, ErrOrderListFailed
	}
	return rows, page, nil
}

// GetOrder 按订单号获取订单详情
func (s *OrderService) GetOrder(orderCode string) (*models.ShipmentOrder, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByCode(orderCode)
	if err != nil {
		logger.Errorw("order_fetch_failed", "order_code", orderCode, "error", err)
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// OrderUpdateRequest 订单编辑输入
// 整单覆盖：可编辑业务字段全量提交，未提交的可空字段写为 NULL。
type OrderUpdateRequest struct {
	LastMileTrackingNumber *string       `json:"lastMileTrackingNumber"`
	ShipmentName           string        `json:"shipmentName" binding:"required"`
	ProviderCode           string        `json:"providerCode" binding:"required"`
	ShippingWarehouse      *string       `json:"shippingWarehouse"`
	CountryCode            *string       `json:"countryCode"`
	Destination            *string       `json:"destination"`
	WarehouseCode          string        `json:"warehouseCode" binding:"required"`
	BusinessCode           *string       `json:"businessCode"`
	ItemNum                int           `json:"itemNum"`
	ShippingChannel        *string       `json:"shippingChannel"`
	ShippingMethod         *string       `json:"shippingMethod"`
	BoxNum                 *int          `json:"boxNum"`
	Weight                 models.Amount `json:"weight"`
	VolumeWeight           models.Amount `json:"volumeWeight"`
	BillingHeavy           models.Amount `json:"billingHeavy"`
	Price                  models.Amount `json:"price"`
	Freight                models.Amount `json:"freight"`
	TotalCost              models.Amount `json:"totalCost"`
	ProviderCost           models.Amount `json:"providerCost"`
	CostDifference         models.Amount `json:"costDifference"`
	CustomsDuty            models.Amount `json:"customsDuty"`
	ClearanceFee           models.Amount `json:"clearanceFee"`
	ExtraCategoryFee       models.Amount `json:"extraCategoryFee"`
	SuperProductFee        models.Amount `json:"superProductFee"`
	Deduction              models.Amount `json:"deduction"`
	ShippingDate           *time.Time    `json:"shippingDate"`
	DepartureDate          *time.Time    `json:"departureDate"`
	PortArrivalDate        *time.Time    `json:"portArrivalDate"`
	DeliveryDate           *time.Time    `json:"deliveryDate"`
	ShippingStatus         string        `json:"shippingStatus" binding:"required,oneof=SHIPPED DEPARTURE ARRIVED DELIVERY SIGNED SHELVED"`
	SignedDate             *time.Time    `json:"signedDate"`
	SignedNum              *int          `json:"signedNum"`
	ShelvedTime            *time.Time    `json:"shelvedTime"`
	Remark                 *string       `json:"remark"`
}

// updates 转为列更新映射，全部可编辑字段无条件写入
func (req OrderUpdateRequest) updates() map[string]interface{} {
	return map[string]interface{}{
		"last_mile_tracking_number": req.LastMileTrackingNumber,
		"shipment_name":             req.ShipmentName,
		"provider_code":             req.ProviderCode,
		"shipping_warehouse":        req.ShippingWarehouse,
		"country_code":              req.CountryCode,
		"destination":               req.Destination,
		"warehouse_code":            req.WarehouseCode,
		"business_code":             req.BusinessCode,
		"item_num":                  req.ItemNum,
		"shipping_channel":          req.ShippingChannel,
		"shipping_method":           req.ShippingMethod,
		"box_num":                   req.BoxNum,
		"weight":                    req.Weight,
		"volume_weight":             req.VolumeWeight,
		"billing_heavy":             req.BillingHeavy,
		"price":                     req.Price,
		"freight":                   req.Freight,
		"total_cost":                req.TotalCost,
		"provider_cost":             req.ProviderCost,
		"cost_difference":           req.CostDifference,
		"customs_duty":              req.CustomsDuty,
		"clearance_fee":             req.ClearanceFee,
		"extra_category_fee":        req.ExtraCategoryFee,
		"super_product_fee":         req.SuperProductFee,
		"deduction":                 req.Deduction,
		"shipping_date":             req.ShippingDate,
		"departure_date":            req.DepartureDate,
		"port_arrival_date":         req.PortArrivalDate,
		"delivery_date":             req.DeliveryDate,
		"shipping_status":           req.ShippingStatus,
		"signed_date":               req.SignedDate,
		"signed_num":                req.SignedNum,
		"shelved_time":              req.ShelvedTime,
		"remark":                    req.Remark,
	}
}

// UpdateOrder 按订单号整单覆盖可编辑字段
func (s *OrderService) UpdateOrder(orderCode string, req OrderUpdateRequest) (*models.ShipmentOrder, error) {
	order, err := s.GetOrder(orderCode)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateByCode(order.OrderCode, req.updates()); err != nil {
		logger.Errorw("order_update_failed", "order_code", order.OrderCode, "error", err)
		return nil, ErrOrderUpdateFailed
	}
	updated, err := s.orderRepo.GetByCode(order.OrderCode)
	if err != nil || updated == nil {
		logger.Errorw("order_reload_failed", "order_code", order.OrderCode, "error", err)
		return nil, ErrOrderFetchFailed
	}
	return updated, nil
}
