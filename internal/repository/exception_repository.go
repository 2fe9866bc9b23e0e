package repository

import (
	"errors"
	"time"

	"github.com/shiptrack-next/internal/models"

	"gorm.io/gorm"
)

// ExceptionRepository 异常与处置记录数据访问接口
type ExceptionRepository interface {
	List(filter ExceptionListFilter) ([]ExceptionListRow, PageResult, error)
	GetByID(id uint) (*models.OrderException, error)
	UpdateStatus(id uint, updates map[string]interface{}) error
	CreateHandle(handle *models.ExceptionHandle) error
	ListLogs(filter ExceptionLogListFilter) ([]ExceptionLogRow, PageResult, error)
}

// exceptionOrderJoin 异常列表关联的订单展示字段
// 异常表订单号未做外键约束，订单可能不存在，关联列整组为 NULL
// 时视为无匹配订单，列表行回落到默认的订单摘要。
type exceptionOrderJoin struct {
	ProviderCode           *string `json:"-"`
	ShipmentName           *string `json:"-"`
	FirstLegTrackingNumber *string `json:"-"`
}

func (j exceptionOrderJoin) present() bool {
	return j.ProviderCode != nil || j.ShipmentName != nil || j.FirstLegTrackingNumber != nil
}

// ExceptionListRow 异常列表行：异常字段 + 关联订单摘要
type ExceptionListRow struct {
	ID                     uint       `json:"id"`
	OrderCode              *string    `json:"orderCode"`
	ExceptionType          *string    `json:"exceptionType"`
	ExceptionNode          *string    `json:"exceptionNode"`
	ExceptionDate          *time.Time `json:"exceptionDate"`
	Status                 string     `json:"status"`
	ExceptionDescribe      *string    `json:"exceptionDescribe"`
	IdentifyTime           *time.Time `json:"identifyTime"`
	ProviderCode           *string    `json:"providerCode"`
	ShipmentName           *string    `json:"shipmentName"`
	FirstLegTrackingNumber *string    `json:"firstLegTrackingNumber"`
	CreateTime             time.Time  `json:"createTime"`
}

// ExceptionLogRow 异常处置记录列表行：处置字段 + 关联异常与订单摘要
type ExceptionLogRow struct {
	ID                     uint       `json:"id"`
	ExceptionID            uint       `json:"exceptionId"`
	OrderCode              string     `json:"orderCode"`
	ShipmentName           *string    `json:"shipmentName"`
	Status                 string     `json:"status"`
	Content                *string    `json:"content"`
	OperatorUID            int        `json:"operatorUid"`
	OperatorName           string     `json:"operatorName"`
	ExceptionType          *string    `json:"exceptionType"`
	ExceptionNode          *string    `json:"exceptionNode"`
	ExceptionDate          *time.Time `json:"exceptionDate"`
	FirstLegTrackingNumber *string    `json:"firstLegTrackingNumber"`
	CreateTime             time.Time  `json:"createTime"`
}

var exceptionListJoins = []joinClause{
	{
		table: "shipment_order_info o",
		on:    "o.order_code = shipment_order_exception.order_code",
	},
}

var exceptionLogJoins = []joinClause{
	{
		table: "shipment_order_exception e",
		on:    "e.id = shipment_exception_handle.exception_id",
	},
	{
		table: "shipment_order_info o",
		on:    "o.order_code = shipment_exception_handle.order_code",
	},
}

// GormExceptionRepository GORM 实现
type GormExceptionRepository struct {
	db *gorm.DB
}

// NewExceptionRepository 创建异常仓库
func NewExceptionRepository(db *gorm.DB) *GormExceptionRepository {
	return &GormExceptionRepository{db: db}
}

type exceptionListScanRow struct {
	models.OrderException
	JoinProviderCode           *string `gorm:"column:join_provider_code"`
	JoinShipmentName           *string `gorm:"column:join_shipment_name"`
	JoinFirstLegTrackingNumber *string `gorm:"column:join_first_leg_tracking_number"`
}

// List 异常列表，LEFT JOIN 订单表补充展示字段
func (r *GormExceptionRepository) List(filter ExceptionListFilter) ([]ExceptionListRow, PageResult, error) {
	query := r.applyListFilter(
		applyLeftJoins(r.db.Model(&models.OrderException{}), exceptionListJoins),
		filter,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageResult{}, err
	}
	page := NewPageResult(total, filter.PageNum, filter.PageSize)

	rows := make([]ExceptionListRow, 0)
	if page.OutOfRange() {
		return rows, page, nil
	}

	scanned := make([]exceptionListScanRow, 0)
	query = query.Select([]string{
		"shipment_order_exception.*",
		"o.provider_code AS join_provider_code",
		"o.shipment_name AS join_shipment_name",
		"o.first_leg_tracking_number AS join_first_leg_tracking_number",
	}).Order("shipment_order_exception.create_time desc, shipment_order_exception.id desc")
	query = applyPagination(query, page.PageNum, page.PageSize)
	if err := query.Scan(&scanned).Error; err != nil {
		return nil, PageResult{}, err
	}

	for _, s := range scanned {
		row := ExceptionListRow{
			ID:                s.ID,
			OrderCode:         s.OrderCode,
			ExceptionType:     s.ExceptionType,
			ExceptionNode:     s.ExceptionNode,
			ExceptionDate:     s.ExceptionDate,
			Status:            s.Status,
			ExceptionDescribe: s.ExceptionDescribe,
			IdentifyTime:      s.IdentifyTime,
			CreateTime:        s.CreateTime,
		}
		join := exceptionOrderJoin{
			ProviderCode:           s.JoinProviderCode,
			ShipmentName:           s.JoinShipmentName,
			FirstLegTrackingNumber: s.JoinFirstLegTrackingNumber,
		}
		if join.present() {
			row.ProviderCode = join.ProviderCode
			row.ShipmentName = join.ShipmentName
			row.FirstLegTrackingNumber = join.FirstLegTrackingNumber
		}
		rows = append(rows, row)
	}
	return rows, page, nil
}

func (r *GormExceptionRepository) applyListFilter(query *gorm.DB, filter ExceptionListFilter) *gorm.DB {
	query = applyEqual(query, "shipment_order_exception.order_code", filter.OrderCode)
	query = applyEqual(query, "o.first_leg_tracking_number", filter.FirstLegTrackingNumber)
	query = applyEqual(query, "o.shipment_name", filter.ShipmentName)
	query = applyEqual(query, "shipment_order_exception.exception_type", filter.ExceptionType)
	query = applyEqual(query, "shipment_order_exception.exception_node", filter.ExceptionNode)
	query = applyBetween(query, "shipment_order_exception.exception_date", filter.ExceptionDate)
	query = applyIn(query, "shipment_order_exception.status", filter.Status)
	return query
}

// GetByID 按主键获取异常，不存在时返回 nil
func (r *GormExceptionRepository) GetByID(id uint) (*models.OrderException, error) {
	var exception models.OrderException
	if err := r.db.First(&exception, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exception, nil
}

// UpdateStatus 更新异常的处置状态与最近操作信息
func (r *GormExceptionRepository) UpdateStatus(id uint, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["update_time"] = time.Now()
	return r.db.Model(&models.OrderException{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CreateHandle 追加一条处置记录
func (r *GormExceptionRepository) CreateHandle(handle *models.ExceptionHandle) error {
	return r.db.Create(handle).Error
}

// ListLogs 异常处置记录列表，LEFT JOIN 异常表与订单表补充展示字段
func (r *GormExceptionRepository) ListLogs(filter ExceptionLogListFilter) ([]ExceptionLogRow, PageResult, error) {
	query := r.applyLogFilter(
		applyLeftJoins(r.db.Model(&models.ExceptionHandle{}), exceptionLogJoins),
		filter,
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageResult{}, err
	}
	page := NewPageResult(total, filter.PageNum, filter.PageSize)

	rows := make([]ExceptionLogRow, 0)
	if page.OutOfRange() {
		return rows, page, nil
	}

	query = query.Select([]string{
		"shipment_exception_handle.id",
		"shipment_exception_handle.exception_id",
		"shipment_exception_handle.order_code",
		"shipment_exception_handle.shipment_name",
		"shipment_exception_handle.status",
		"shipment_exception_handle.content",
		"shipment_exception_handle.operator_uid",
		"shipment_exception_handle.operator_name",
		"shipment_exception_handle.create_time",
		"e.exception_type AS exception_type",
		"e.exception_node AS exception_node",
		"e.exception_date AS exception_date",
		"o.first_leg_tracking_number AS first_leg_tracking_number",
	}).Order("shipment_exception_handle.create_time desc, shipment_exception_handle.id desc")
	query = applyPagination(query, page.PageNum, page.PageSize)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, PageResult{}, err
	}
	return rows, page, nil
}

func (r *GormExceptionRepository) applyLogFilter(query *gorm.DB, filter ExceptionLogListFilter) *gorm.DB {
	query = applyEqual(query, "shipment_exception_handle.order_code", filter.OrderCode)
	query = applyEqual(query, "o.first_leg_tracking_number", filter.FirstLegTrackingNumber)
	// 过滤走订单表的货件名，处置行上的冗余副本可能为 NULL
	query = applyEqual(query, "o.shipment_name", filter.ShipmentName)
	if filter.ExceptionID > 0 {
		query = query.Where("shipment_exception_handle.exception_id = ?", filter.ExceptionID)
	}
	return query
}
