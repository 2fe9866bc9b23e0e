package admin

import (
	"time"

	"github.com/shiptrack-next/internal/http/response"
	"github.com/shiptrack-next/internal/repository"
	"github.com/shiptrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// orderListQuery 订单列表查询参数
type orderListQuery struct {
	PageNum                int      `form:"pageNum"`
	PageSize               int      `form:"pageSize"`
	OrderCode              string   `form:"orderCode"`
	FirstLegTrackingNumber string   `form:"firstLegTrackingNumber"`
	LastMileTrackingNumber string   `form:"lastMileTrackingNumber"`
	ShipmentName           string   `form:"shipmentName"`
	ProviderCode           string   `form:"providerCode"`
	ShippingMethod         string   `form:"shippingMethod"`
	ShippingStatus         string   `form:"shippingStatus" binding:"omitempty,oneof=SHIPPED DEPARTURE ARRIVED DELIVERY SIGNED SHELVED"`
	CountryCode            string   `form:"countryCode"`
	WarehouseCode          string   `form:"warehouseCode"`
	IsException            string   `form:"isException"`
	ShippingDate           []string `form:"shippingDate"`
	DepartureDate          []string `form:"departureDate"`
	PortArrivalDate        []string `form:"portArrivalDate"`
	DeliveryDate           []string `form:"deliveryDate"`
	SignedDate             []string `form:"signedDate"`
}

// ListOrders 出货订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	var query orderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	pageNum, pageSize := normalizePagination(query.PageNum, query.PageSize)

	isException, err := parseBoolNullable(query.IsException)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	filter := repository.OrderListFilter{
		PageNum:                pageNum,
		PageSize:               pageSize,
		OrderCode:              query.OrderCode,
		FirstLegTrackingNumber: query.FirstLegTrackingNumber,
		LastMileTrackingNumber: query.LastMileTrackingNumber,
		ShipmentName:           query.ShipmentName,
		ProviderCode:           query.ProviderCode,
		ShippingMethod:         query.ShippingMethod,
		ShippingStatus:         query.ShippingStatus,
		CountryCode:            query.CountryCode,
		WarehouseCode:          query.WarehouseCode,
		IsException:            isException,
	}
	ranges := []struct {
		raw  []string
		dest *[]time.Time
	}{
		{query.ShippingDate, &filter.ShippingDate},
		{query.DepartureDate, &filter.DepartureDate},
		{query.PortArrivalDate, &filter.PortArrivalDate},
		{query.DeliveryDate, &filter.DeliveryDate},
		{query.SignedDate, &filter.SignedDate},
	}
	for _, r := range ranges {
		span, err := parseTimeRange(r.raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, err.Error(), nil)
			return
		}
		*r.dest = span
	}

	rows, page, err := h.OrderService.ListOrders(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, response.Page{
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		PageSize:      page.PageSize,
		PageNum:       page.PageNum,
		Content:       rows,
	})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetOrder(c.Param("order_code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrder 编辑订单
func (h *Handler) UpdateOrder(c *gin.Context) {
	var req service.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	order, err := h.OrderService.UpdateOrder(c.Param("order_code"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
