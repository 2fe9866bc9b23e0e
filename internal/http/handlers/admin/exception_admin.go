package admin

import (
	"github.com/shiptrack-next/internal/http/response"
	"github.com/shiptrack-next/internal/repository"
	"github.com/shiptrack-next/internal/service"

	"github.com/gin-gonic/gin"
)

// exceptionListQuery 异常列表查询参数
type exceptionListQuery struct {
	PageNum                int      `form:"pageNum"`
	PageSize               int      `form:"pageSize"`
	OrderCode              string   `form:"orderCode"`
	FirstLegTrackingNumber string   `form:"firstLegTrackingNumber"`
	ShipmentName           string   `form:"shipmentName"`
	ExceptionType          string   `form:"exceptionType"`
	ExceptionNode          string   `form:"exceptionNode"`
	ExceptionDate          []string `form:"exceptionDate"`
	Status                 []string `form:"status" binding:"omitempty,dive,oneof=PENDING PROCESSING CLOSED"`
}

// ListExceptions 异常列表
func (h *Handler) ListExceptions(c *gin.Context) {
	var query exceptionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	pageNum, pageSize := normalizePagination(query.PageNum, query.PageSize)

	exceptionDate, err := parseTimeRange(query.ExceptionDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	rows, page, err := h.ExceptionService.ListExceptions(repository.ExceptionListFilter{
		PageNum:                pageNum,
		PageSize:               pageSize,
		OrderCode:              query.OrderCode,
		FirstLegTrackingNumber: query.FirstLegTrackingNumber,
		ShipmentName:           query.ShipmentName,
		ExceptionType:          query.ExceptionType,
		ExceptionNode:          query.ExceptionNode,
		ExceptionDate:          exceptionDate,
		Status:                 query.Status,
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

// ProcessException 处置异常
func (h *Handler) ProcessException(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}
	var req service.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	exception, err := h.ExceptionService.ProcessException(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, exception)
}

// exceptionLogQuery 异常处置记录列表查询参数
type exceptionLogQuery struct {
	PageNum                int    `form:"pageNum"`
	PageSize               int    `form:"pageSize"`
	OrderCode              string `form:"orderCode"`
	FirstLegTrackingNumber string `form:"firstLegTrackingNumber"`
	ShipmentName           string `form:"shipmentName"`
	ExceptionID            uint   `form:"exceptionId"`
}

// ListExceptionLogs 异常处置记录列表
func (h *Handler) ListExceptionLogs(c *gin.Context) {
	var query exceptionLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "参数错误", err)
		return
	}
	pageNum, pageSize := normalizePagination(query.PageNum, query.PageSize)

	rows, page, err := h.ExceptionService.ListLogs(repository.ExceptionLogListFilter{
		PageNum:                pageNum,
		PageSize:               pageSize,
		OrderCode:              query.OrderCode,
		FirstLegTrackingNumber: query.FirstLegTrackingNumber,
		ShipmentName:           query.ShipmentName,
		ExceptionID:            query.ExceptionID,
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
