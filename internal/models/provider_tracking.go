package models

import (
	"time"
)

// ProviderTracking 物流商接口返回的原始轨迹记录表
type ProviderTracking struct {
	ID                     uint      `gorm:"primarykey" json:"id"`
	OrderCode              string    `gorm:"index;not null" json:"orderCode"`              // 订单号
	FirstLegTrackingNumber *string   `json:"firstLegTrackingNumber"`                       // 头程追踪号
	FirstLegTracking       string    `gorm:"type:text;not null" json:"firstLegTracking"`   // 原始轨迹报文
	IsFirstFinished        int       `gorm:"not null;default:0" json:"isFirstFinished"`    // 头程是否完结
	CreateTime             time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime             time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

// TableName 指定表名
func (ProviderTracking) TableName() string {
	return "shipment_provider_tracking"
}
