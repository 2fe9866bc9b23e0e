package repository

import "gorm.io/gorm"

// DefaultPageSize 列表接口默认每页条数
const DefaultPageSize = 10

// PageResult 分页信息
// totalPages 恒 ≥ 1：空结果集也按 1 页上报。
type PageResult struct {
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
	PageSize      int   `json:"pageSize"`
	PageNum       int   `json:"pageNum"`
}

// NewPageResult 根据总数与请求页码计算分页信息
func NewPageResult(totalElements int64, pageNum, pageSize int) PageResult {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageNum < 1 {
		pageNum = 1
	}
	totalPages := (totalElements + int64(pageSize) - 1) / int64(pageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	return PageResult{
		TotalElements: totalElements,
		TotalPages:    totalPages,
		PageSize:      pageSize,
		PageNum:       pageNum,
	}
}

// OutOfRange 请求页码是否超出总页数
// 超出时列表接口直接返回空内容，不再下发明细查询。
func (p PageResult) OutOfRange() bool {
	return int64(p.PageNum) > p.TotalPages
}

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, pageNum, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageNum < 1 {
		pageNum = 1
	}
	offset := (pageNum - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}
