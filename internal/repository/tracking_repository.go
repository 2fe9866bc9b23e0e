package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/models"

	"gorm.io/gorm"
)

// TrackingRepository 头程轨迹数据访问接口
type TrackingRepository interface {
	ListNodes(orderCode string, filter TrackingNodeFilter) ([]models.FirstLegTracking, error)
	ListPendingOrders(filter PendingOrderListFilter) ([]PendingOrderRow, PageResult, error)
	GetNodeByID(id uint) (*models.FirstLegTracking, error)
	UpdateNode(id uint, updates map[string]interface{}) error
	CreateNode(node *models.FirstLegTracking) error
	NodeExists(orderCode, nodeID string) (bool, error)
	ListProviderTracking(orderCode string) ([]models.ProviderTracking, error)
}

// PendingOrderRow 待审核订单列表行：订单摘要 + 待审核节点数
type PendingOrderRow struct {
	OrderCode              string     `json:"orderCode"`
	FirstLegTrackingNumber string     `json:"firstLegTrackingNumber"`
	ShipmentName           string     `json:"shipmentName"`
	ProviderCode           string     `json:"providerCode"`
	ShippingStatus         string     `json:"shippingStatus"`
	ShippingDate           *time.Time `json:"shippingDate"`
	PendingNum             int64      `json:"pendingNum"`
}

// 待审核列表的订单投影列，同时作为 GROUP BY 列（postgres 要求非聚合列全部入组）。
var pendingOrderColumns = []string{
	"shipment_order_info.order_code",
	"shipment_order_info.first_leg_tracking_number",
	"shipment_order_info.shipment_name",
	"shipment_order_info.provider_code",
	"shipment_order_info.shipping_status",
	"shipment_order_info.shipping_date",
}

// GormTrackingRepository GORM 实现
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository 创建轨迹仓库
func NewTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// ListNodes 单个订单的轨迹节点列表，最新节点在前
func (r *GormTrackingRepository) ListNodes(orderCode string, filter TrackingNodeFilter) ([]models.FirstLegTracking, error) {
	query := r.db.Where("order_code = ?", orderCode)
	query = applyEqual(query, "identify_status", filter.IdentifyStatus)

	nodes := make([]models.FirstLegTracking, 0)
	if err := query.Order("track_time desc, id desc").Find(&nodes).Error; err != nil {
		return nil, err
	}
	return nodes, nil
}

// ListPendingOrders 含待审核节点的订单列表
// 与轨迹表做 INNER JOIN 并把识别状态限制写进连接条件，
// 计数按订单号去重，明细按订单分组统计 pending_num。
func (r *GormTrackingRepository) ListPendingOrders(filter PendingOrderListFilter) ([]PendingOrderRow, PageResult, error) {
	var total int64
	if err := r.pendingQuery(filter).
		Distinct("shipment_order_info.order_code").
		Count(&total).Error; err != nil {
		return nil, PageResult{}, err
	}
	page := NewPageResult(total, filter.PageNum, filter.PageSize)

	rows := make([]PendingOrderRow, 0)
	if page.OutOfRange() {
		return rows, page, nil
	}

	query := r.pendingQuery(filter).
		Select(append(append([]string{}, pendingOrderColumns...),
			"COUNT(t.id) AS pending_num")).
		Group(strings.Join(pendingOrderColumns, ", ")).
		Order("shipment_order_info.shipping_date desc, shipment_order_info.order_code desc")
	query = applyPagination(query, page.PageNum, page.PageSize)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, PageResult{}, err
	}
	return rows, page, nil
}

// pendingQuery 构造待审核列表的基础查询
// 计数与明细各自独立构造，避免 Distinct/Group 污染同一条链。
func (r *GormTrackingRepository) pendingQuery(filter PendingOrderListFilter) *gorm.DB {
	query := r.db.Model(&models.ShipmentOrder{}).
		Joins("INNER JOIN shipment_first_leg_tracking t ON t.order_code = shipment_order_info.order_code AND t.identify_status = ?",
			constants.IdentifyStatusPendingReview)
	query = applyEqual(query, "shipment_order_info.order_code", filter.OrderCode)
	query = applyEqual(query, "shipment_order_info.first_leg_tracking_number", filter.FirstLegTrackingNumber)
	query = applyEqual(query, "shipment_order_info.provider_code", filter.ProviderCode)
	return query
}

// GetNodeByID 按主键获取轨迹节点，不存在时返回 nil
func (r *GormTrackingRepository) GetNodeByID(id uint) (*models.FirstLegTracking, error) {
	var node models.FirstLegTracking
	if err := r.db.First(&node, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &node, nil
}

// UpdateNode 按主键更新轨迹节点
func (r *GormTrackingRepository) UpdateNode(id uint, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["update_time"] = time.Now()
	return r.db.Model(&models.FirstLegTracking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CreateNode 新增轨迹节点
func (r *GormTrackingRepository) CreateNode(node *models.FirstLegTracking) error {
	return r.db.Create(node).Error
}

// NodeExists 判断 (订单号, 节点标识) 是否已存在
func (r *GormTrackingRepository) NodeExists(orderCode, nodeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FirstLegTracking{}).
		Where("order_code = ? AND node_id = ?", orderCode, nodeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListProviderTracking 单个订单的物流商原始轨迹记录，按创建时间降序
func (r *GormTrackingRepository) ListProviderTracking(orderCode string) ([]models.ProviderTracking, error) {
	records := make([]models.ProviderTracking, 0)
	err := r.db.Where("order_code = ?", orderCode).
		Order("create_time desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
