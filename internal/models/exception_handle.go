package models

import (
	"time"
)

// ExceptionHandle 异常处置记录表（追加写入，处置后不再修改）
type ExceptionHandle struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ExceptionID  uint      `gorm:"column:exception_id;index;not null" json:"exceptionId"` // 关联异常 ID
	OrderCode    string    `gorm:"index;not null" json:"orderCode"`                       // 订单号
	ShipmentName *string   `json:"shipmentName"`                                          // 货件名称（冗余展示字段）
	Status       string    `gorm:"not null" json:"status"`                                // 本次处置后的状态
	Content      *string   `gorm:"type:text" json:"content"`                              // 处置内容
	OperatorUID  int       `gorm:"column:operator_uid;not null" json:"operatorUid"`       // 操作人 ID
	OperatorName string    `gorm:"not null" json:"operatorName"`                          // 操作人名称
	CreateTime   time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime   time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

// TableName 指定表名
func (ExceptionHandle) TableName() string {
	return "shipment_exception_handle"
}
