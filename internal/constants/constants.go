package constants

// 物流状态常量
const (
	ShippingStatusShipped   = "SHIPPED"   // 已发货
	ShippingStatusDeparture = "DEPARTURE" // 已开船
	ShippingStatusArrived   = "ARRIVED"   // 已到港
	ShippingStatusDelivery  = "DELIVERY"  // 派送中
	ShippingStatusSigned    = "SIGNED"    // 已签收
	ShippingStatusShelved   = "SHELVED"   // 已上架
)

// 轨迹识别状态常量
const (
	IdentifyStatusAutoAccepted   = "AUTO_ACCEPTED"   // AI 结果自动采纳
	IdentifyStatusPendingReview  = "PENDING_REVIEW"  // 等待人工审核
	IdentifyStatusManualReviewed = "MANUAL_REVIEWED" // 人工审核完成
)

// 轨迹来源常量
const (
	TrackSourceProvider = 0 // 物流商接口回传
	TrackSourceManual   = 1 // 人工补录
)

// 异常处置状态常量
const (
	ExceptionStatusPending    = "PENDING"    // 待处理
	ExceptionStatusProcessing = "PROCESSING" // 处理中
	ExceptionStatusClosed     = "CLOSED"     // 已关闭
)

// 默认操作人（未接入账号体系时的占位身份）
const (
	DefaultOperatorUID  = 1
	DefaultOperatorName = "admin"
)
