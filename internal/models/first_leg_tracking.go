package models

import (
	"time"
)

// FirstLegTracking 头程轨迹节点表（AI 识别结果 + 人工审核结果）
// (order_code, node_id) 唯一：同一物流商节点在一个订单下只记录一次。
type FirstLegTracking struct {
	ID                   uint       `gorm:"primarykey" json:"id"`
	OrderCode            string     `gorm:"uniqueIndex:uk_order_node;not null" json:"orderCode"`     // 订单号
	NodeID               string     `gorm:"column:node_id;uniqueIndex:uk_order_node;not null" json:"nodeId"` // 物流商节点标识
	TrackTime            *time.Time `json:"trackTime"`                                               // 原始节点时间
	TrackContent         string     `gorm:"type:text;not null" json:"trackContent"`                  // 原始节点文本
	TrackType            *string    `json:"trackType"`                                               // AI 识别的轨迹类型
	TrackNode            *string    `json:"trackNode"`                                               // AI 识别的轨迹节点
	NodeDate             *time.Time `json:"nodeDate"`                                                // AI 识别的节点日期
	Confidence           Amount     `gorm:"type:decimal(20,2)" json:"confidence"`                    // AI 置信度
	IdentifyStatus       string     `gorm:"index;default:AUTO_ACCEPTED" json:"identifyStatus"`       // 识别状态
	ArtificialReviewTime *time.Time `json:"artificialReviewTime"`                                    // 人工审核时间
	ArtificialTrackType  *string    `json:"artificialTrackType"`                                     // 人工确认的轨迹类型
	ArtificialTrackNode  *string    `json:"artificialTrackNode"`                                     // 人工确认的轨迹节点
	ArtificialNodeDate   *time.Time `json:"artificialNodeDate"`                                      // 人工确认的节点日期
	OperatorUID          *int       `gorm:"column:operator_uid" json:"operatorUid"`                  // 审核人 ID
	OperatorName         *string    `json:"operatorName"`                                            // 审核人名称
	Source               int        `gorm:"not null;default:0" json:"source"`                        // 来源：0 接口 / 1 人工
	CreateTime           time.Time  `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime           time.Time  `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}

// TableName 指定表名
func (FirstLegTracking) TableName() string {
	return "shipment_first_leg_tracking"
}
