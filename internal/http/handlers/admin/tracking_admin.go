package admin

import (
	"github.com/shiptrack-next/internal/http/response"
	"github.com/shiptrack-next/internal/repository"
	"github.com/shiptrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// trackingNodeQuery 轨迹节点列表查询参数
type trackingNodeQuery struct {
	IdentifyStatus string `form:"identifyStatus" binding:"omitempty,oneof=AUTO_ACCEPTED PENDING_REVIEW MANUAL_REVIEWED"`
}

// ListTrackingNodes 单个订单的轨迹节点列表
func (h *Handler) ListTrackingNodes(c *gin.Context) {
	var query trackingNodeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	nodes, err := h.TrackingService.ListNodes(c.Param("order_code"), repository.TrackingNodeFilter{
		IdentifyStatus: query.IdentifyStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nodes)
}

// pendingOrderQuery 待审核订单列表查询参数
type pendingOrderQuery struct {
	PageNum                int    `form:"pageNum"`
	PageSize               int    `form:"pageSize"`
	OrderCode              string `form:"orderCode"`
	FirstLegTrackingNumber string `form:"firstLegTrackingNumber"`
	ProviderCode           string `form:"providerCode"`
}

// ListPendingOrders 含待审核节点的订单列表
func (h *Handler) ListPendingOrders(c *gin.Context) {
	var query pendingOrderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	pageNum, pageSize := normalizePagination(query.PageNum, query.PageSize)

	rows, page, err := h.TrackingService.ListPendingOrders(repository.PendingOrderListFilter{
		PageNum:                pageNum,
		PageSize:               pageSize,
		OrderCode:              query.OrderCode,
		FirstLegTrackingNumber: query.FirstLegTrackingNumber,
		ProviderCode:           query.ProviderCode,
	})
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

// SubmitReview 人工审核轨迹节点
func (h *Handler) SubmitReview(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}
	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	node, err := h.TrackingService.SubmitReview(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, node)
}

// AddManualNode 手工新增轨迹节点
func (h *Handler) AddManualNode(c *gin.Context) {
	var req service.ManualNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	node, err := h.TrackingService.AddManualNode(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, node)
}

// ListProviderTracking 单个订单的物流商原始轨迹
func (h *Handler) ListProviderTracking(c *gin.Context) {
	records, err := h.TrackingService.ListProviderTracking(c.Param("order_code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, records)
}
