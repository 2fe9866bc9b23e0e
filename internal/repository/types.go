package repository

import "time"

// OrderListFilter 查询出货订单列表的过滤条件
// 字符串字段为空表示不过滤；isException 需要区分「未传」与 false，使用指针。
// 日期字段为两元素时间数组，长度不为 2 时不生效。
type OrderListFilter struct {
	PageNum                int
	PageSize               int
	OrderCode              string // 模糊匹配
	FirstLegTrackingNumber string // 模糊匹配
	LastMileTrackingNumber string // 模糊匹配
	ShipmentName           string
	ProviderCode           string
	ShippingMethod         string
	ShippingStatus         string
	CountryCode            string
	WarehouseCode          string
	IsException            *bool
	ShippingDate           []time.Time
	DepartureDate          []time.Time
	PortArrivalDate        []time.Time
	DeliveryDate           []time.Time
	SignedDate             []time.Time
}

// TrackingNodeFilter 查询订单轨迹节点列表的过滤条件
type TrackingNodeFilter struct {
	IdentifyStatus string
}

// PendingOrderListFilter 查询待审核订单列表的过滤条件
type PendingOrderListFilter struct {
	PageNum                int
	PageSize               int
	OrderCode              string
	FirstLegTrackingNumber string
	ProviderCode           string
}

// ExceptionListFilter 查询异常列表的过滤条件
type ExceptionListFilter struct {
	PageNum                int
	PageSize               int
	OrderCode              string
	FirstLegTrackingNumber string
	ShipmentName           string
	ExceptionType          string
	ExceptionNode          string
	ExceptionDate          []time.Time
	Status                 []string
}

// ExceptionLogListFilter 查询异常处置记录列表的过滤条件
type ExceptionLogListFilter struct {
	PageNum                int
	PageSize               int
	OrderCode              string
	FirstLegTrackingNumber string
	ShipmentName           string
	ExceptionID            uint
}
