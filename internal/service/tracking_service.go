package service

import (
	"strings"
	"time"

	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/models"
	"github.com/shiptrack-next/internal/repository"
)

// TrackingService 头程轨迹服务
type TrackingService struct {
	trackingRepo repository.TrackingRepository
	orderRepo    repository.OrderRepository
}

// NewTrackingService 创建轨迹服务
func NewTrackingService(trackingRepo repository.TrackingRepository, orderRepo repository.OrderRepository) *TrackingService {
	return &TrackingService{trackingRepo: trackingRepo, orderRepo: orderRepo}
}

// ListNodes 单个订单的轨迹节点列表
func (s *TrackingService) ListNodes(orderCode string, filter repository.TrackingNodeFilter) ([]models.FirstLegTracking, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return nil, ErrOrderNotFound
	}
	nodes, err := s.trackingRepo.ListNodes(orderCode, filter)
	if err != nil {
		logger.Errorw("tracking_node_list_failed", "order_code", orderCode, "error", err)
		return nil, ErrTrackingListFailed
	}
	return nodes, nil
}

// ListPendingOrders 含待审核节点的订单列表
func (s *TrackingService) ListPendingOrders(filter repository.PendingOrderListFilter) ([]repository.PendingOrderRow, repository.PageResult, error) {
	rows, page, err := s.trackingRepo.ListPendingOrders(filter)
	if err != nil {
		logger.Errorw("tracking_pending_list_failed", "error", err)
		return nil, repository.PageResult{}, ErrTrackingListFailed
	}
	return rows, page, nil
}

// ReviewRequest 人工审核输入
type ReviewRequest struct {
	TrackType    string     `json:"trackType" binding:"required"`
	TrackNode    string     `json:"trackNode" binding:"required"`
	NodeDate     *time.Time `json:"nodeDate"`
	OperatorUID  int        `json:"operatorUid"`
	OperatorName string     `json:"operatorName"`
}

// SubmitReview 人工审核轨迹节点
// 审核结果写入 artificial_* 字段，AI 识别结果保留不动。
func (s *TrackingService) SubmitReview(id uint, req ReviewRequest) (*models.FirstLegTracking, error) {
	node, err := s.trackingRepo.GetNodeByID(id)
	if err != nil {
		logger.Errorw("tracking_node_fetch_failed", "node_id", id, "error", err)
		return nil, ErrTrackingListFailed
	}
	if node == nil {
		return nil, ErrTrackingNodeNotFound
	}

	operatorUID, operatorName := normalizeOperator(req.OperatorUID, req.OperatorName)
	now := time.Now()
	updates := map[string]interface{}{
		"artificial_track_type":  req.TrackType,
		"artificial_track_node":  req.TrackNode,
		"artificial_node_date":   req.NodeDate,
		"artificial_review_time": now,
		"identify_status":        constants.IdentifyStatusManualReviewed,
		"operator_uid":           operatorUID,
		"operator_name":          operatorName,
	}
	if err := s.trackingRepo.UpdateNode(node.ID, updates); err != nil {
		logger.Errorw("tracking_review_failed", "node_id", node.ID, "error", err)
		return nil, ErrTrackingReviewFailed
	}

	updated, err := s.trackingRepo.GetNodeByID(node.ID)
	if err != nil || updated == nil {
		logger.Errorw("tracking_node_reload_failed", "node_id", node.ID, "error", err)
		return nil, ErrTrackingReviewFailed
	}
	return updated, nil
}

// ManualNodeRequest 手工新增轨迹节点输入
type ManualNodeRequest struct {
	OrderCode    string     `json:"orderCode" binding:"required"`
	NodeID       string     `json:"nodeId" binding:"required"`
	TrackTime    *time.Time `json:"trackTime"`
	TrackContent string     `json:"trackContent" binding:"required"`
	TrackType    string     `json:"trackType" binding:"required"`
	TrackNode    string     `json:"trackNode" binding:"required"`
	NodeDate     *time.Time `json:"nodeDate"`
	OperatorUID  int        `json:"operatorUid"`
	OperatorName string     `json:"operatorName"`
}

// AddManualNode 手工新增轨迹节点
// 人工录入直接视为已审核，识别字段与人工字段写同一份内容。
func (s *TrackingService) AddManualNode(req ManualNodeRequest) (*models.FirstLegTracking, error) {
	orderCode := strings.TrimSpace(req.OrderCode)
	order, err := s.orderRepo.GetByCode(orderCode)
	if err != nil {
		logger.Errorw("tracking_order_fetch_failed", "order_code", orderCode, "error", err)
		return nil, ErrTrackingCreateFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	nodeID := strings.TrimSpace(req.NodeID)
	exists, err := s.trackingRepo.NodeExists(orderCode, nodeID)
	if err != nil {
		logger.Errorw("tracking_node_exists_check_failed", "order_code", orderCode, "node_id", nodeID, "error", err)
		return nil, ErrTrackingCreateFailed
	}
	if exists {
		return nil, ErrTrackingNodeExists
	}

	operatorUID, operatorName := normalizeOperator(req.OperatorUID, req.OperatorName)
	now := time.Now()
	node := &models.FirstLegTracking{
		OrderCode:            orderCode,
		NodeID:               nodeID,
		TrackTime:            req.TrackTime,
		TrackContent:         req.TrackContent,
		TrackType:            &req.TrackType,
		TrackNode:            &req.TrackNode,
		NodeDate:             req.NodeDate,
		IdentifyStatus:       constants.IdentifyStatusManualReviewed,
		ArtificialReviewTime: &now,
		ArtificialTrackType:  &req.TrackType,
		ArtificialTrackNode:  &req.TrackNode,
		ArtificialNodeDate:   req.NodeDate,
		OperatorUID:          &operatorUID,
		OperatorName:         &operatorName,
		Source:               constants.TrackSourceManual,
	}
	if err := s.trackingRepo.CreateNode(node); err != nil {
		logger.Errorw("tracking_node_create_failed", "order_code", orderCode, "node_id", nodeID, "error", err)
		return nil, ErrTrackingCreateFailed
	}
	return node, nil
}

// ListProviderTracking 单个订单的物流商原始轨迹
func (s *TrackingService) ListProviderTracking(orderCode string) ([]models.ProviderTracking, error) {
	orderCode = strings.TrimSpace(orderCode)
	order, err := s.orderRepo.GetByCode(orderCode)
	if err != nil {
		logger.Errorw("provider_tracking_order_fetch_failed", "order_code", orderCode, "error", err)
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	records, err := s.trackingRepo.ListProviderTracking(orderCode)
	if err != nil {
		logger.Errorw("provider_tracking_list_failed", "order_code", orderCode, "error", err)
		return nil, ErrTrackingListFailed
	}
	return records, nil
}

// normalizeOperator 操作人缺省回落到系统管理员
func normalizeOperator(uid int, name string) (int, string) {
	if uid <= 0 {
		uid = constants.DefaultOperatorUID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.DefaultOperatorName
	}
	return uid, name
}
