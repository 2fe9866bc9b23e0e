package models

import (
	"time"
)

// OrderException 订单异常数据表
// 由异常检测流程写入，这里只做展示与处置状态流转，从不删除。
type OrderException struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	OrderCode         *string    `gorm:"index" json:"orderCode"`                           // 订单号（未做外键约束）
	ExceptionType     *string    `json:"exceptionType"`                                    // 异常类型
	ExceptionNode     *string    `json:"exceptionNode"`                                    // 异常节点
	ExceptionDate     *time.Time `json:"exceptionDate"`                                    // 异常触发时间
	Status            string     `gorm:"index;default:PENDING" json:"status"`              // 处置状态
	ExceptionDescribe *string    `gorm:"type:text" json:"exceptionDescribe"`               // 异常描述
	StatusChange      *int       `gorm:"default:0" json:"statusChange"`                    // 状态是否发生过变更
	OperatorUID       *int       `gorm:"column:operator_uid" json:"operatorUid"`           // 最近操作人 ID
	OperatorName      *string    `json:"operatorName"`                                     // 最近操作人名称
	IdentifyTime      *time.Time `json:"identifyTime"`                                     // 识别时间
	OperateContent    *string    `gorm:"type:text" json:"operateContent"`                  // 最近操作内容
	CreateTime        time.Time  `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime        time.Time  `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

// TableName 指定表名
func (OrderException) TableName() string {
	return "shipment_order_exception"
}
