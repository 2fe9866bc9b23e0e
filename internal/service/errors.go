package service

import "errors"

// 业务哨兵错误，handler 层通过 errors.Is 映射为响应码。
var (
	ErrOrderNotFound          = errors.New("订单不存在")
	ErrOrderFetchFailed       = errors.New("查询订单失败")
	ErrOrderListFailed        = errors.New("查询订单列表失败")
	ErrOrderUpdateFailed      = errors.New("更新订单失败")
	ErrTrackingNodeNotFound   = errors.New("轨迹节点不存在")
	ErrTrackingNodeExists     = errors.New("轨迹节点已存在")
	ErrTrackingListFailed     = errors.New("查询轨迹节点失败")
	ErrTrackingReviewFailed   = errors.New("提交轨迹审核失败")
	ErrTrackingCreateFailed   = errors.New("新增轨迹节点失败")
	ErrExceptionNotFound      = errors.New("异常记录不存在")
	ErrExceptionListFailed    = errors.New("查询异常列表失败")
	ErrExceptionProcessFailed = errors.New("处理异常失败")
	ErrExceptionLogFailed     = errors.New("查询异常处置记录失败")
)
