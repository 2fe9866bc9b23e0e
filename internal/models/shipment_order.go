package models

import (
	"time"
)

// ShipmentOrder 出货订单基本信息表
type ShipmentOrder struct {
	ID                     uint       `gorm:"primarykey" json:"-"`
	OrderCode              string     `gorm:"uniqueIndex;not null" json:"orderCode"`            // 订单号（全局唯一业务主键）
	FirstLegTrackingNumber string     `gorm:"index;not null" json:"firstLegTrackingNumber"`     // 头程追踪号
	LastMileTrackingNumber *string    `gorm:"index" json:"lastMileTrackingNumber"`              // 尾程追踪号
	AddTime                time.Time  `gorm:"autoCreateTime" json:"addTime"`                    // 录入时间
	ShipmentName           string     `gorm:"not null" json:"shipmentName"`                     // 货件名称
	ProviderCode           string     `gorm:"not null" json:"providerCode"`                     // 物流商代码
	ShippingWarehouse      *string    `json:"shippingWarehouse"`                                // 发货仓
	CountryCode            *string    `json:"countryCode"`                                      // 目的国家
	Destination            *string    `json:"destination"`                                      // 目的地
	WarehouseCode          string     `gorm:"not null" json:"warehouseCode"`                    // 仓库代码
	BusinessCode           *string    `json:"businessCode"`                                     // 业务代码
	ItemNum                int        `gorm:"not null;default:0" json:"itemNum"`                // 商品数量
	ShippingChannel        *string    `json:"shippingChannel"`                                  // 物流渠道
	ShippingMethod         *string    `json:"shippingMethod"`                                   // 运输方式
	BoxNum                 *int       `gorm:"default:0" json:"boxNum"`                          // 箱数
	Weight                 Amount     `gorm:"type:decimal(20,2)" json:"weight"`                 // 重量
	VolumeWeight           Amount     `gorm:"type:decimal(20,2)" json:"volumeWeight"`           // 体积重
	BillingHeavy           Amount     `gorm:"type:decimal(20,2)" json:"billingHeavy"`           // 计费重
	Price                  Amount     `gorm:"type:decimal(20,2)" json:"price"`                  // 货值
	Freight                Amount     `gorm:"type:decimal(20,2)" json:"freight"`                // 运费
	TotalCost              Amount     `gorm:"type:decimal(20,2)" json:"totalCost"`              // 总费用
	ProviderCost           Amount     `gorm:"type:decimal(20,2)" json:"providerCost"`           // 物流商费用
	CostDifference         Amount     `gorm:"type:decimal(20,2)" json:"costDifference"`         // 费用差额
	CustomsDuty            Amount     `gorm:"type:decimal(20,2)" json:"customsDuty"`            // 关税
	ClearanceFee           Amount     `gorm:"type:decimal(20,2)" json:"clearanceFee"`           // 清关费
	ExtraCategoryFee       Amount     `gorm:"type:decimal(20,2)" json:"extraCategoryFee"`       // 超品类费
	SuperProductFee        Amount     `gorm:"type:decimal(20,2)" json:"superProductFee"`        // 超品费
	Deduction              Amount     `gorm:"type:decimal(20,2)" json:"deduction"`              // 扣款
	ShippingDate           *time.Time `json:"shippingDate"`                                     // 发货时间
	DepartureDate          *time.Time `json:"departureDate"`                                    // 开船时间
	PortArrivalDate        *time.Time `json:"portArrivalDate"`                                  // 到港时间
	DeliveryDate           *time.Time `json:"deliveryDate"`                                     // 派送时间
	ShippingStatus         string     `gorm:"index;default:SHIPPED" json:"shippingStatus"`      // 物流状态
	SignedDate             *time.Time `json:"signedDate"`                                       // 签收时间
	SignedNum              *int       `gorm:"default:0" json:"signedNum"`                       // 签收数量
	ShelvedTime            *time.Time `json:"shelvedTime"`                                      // 上架时间
	TotalTrack             *string    `gorm:"type:text" json:"totalTrack"`                      // 轨迹汇总
	TrackingHistory        *string    `gorm:"type:text" json:"trackingHistory"`                 // 历史轨迹
	LatestTrackTime        *time.Time `json:"latestTrackTime"`                                  // 最近轨迹时间
	Remark                 *string    `gorm:"type:text" json:"remark"`                          // 备注
	IsException            *int       `gorm:"default:0" json:"isException"`                     // 是否异常（null/0/1）
	CreateTime             time.Time  `gorm:"column:create_time;autoCreateTime" json:"createTime"` // 创建时间
	UpdateTime             time.Time  `gorm:"column:update_time;autoUpdateTime" json:"updateTime"` // 更新时间
}

// TableName 指定表名
func (ShipmentOrder) TableName() string {
	return "shipment_order_info"
}
