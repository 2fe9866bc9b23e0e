package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupExceptionRepositoryTest(t *testing.T) (*GormExceptionRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:exception_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ShipmentOrder{},
		&models.OrderException{},
		&models.ExceptionHandle{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewExceptionRepository(db), db
}

func seedExceptionData(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	order := models.ShipmentOrder{
		OrderCode:              "SO3001",
		FirstLegTrackingNumber: "FL-E-001",
		ShipmentName:           "货件丙",
		ProviderCode:           "SEALINK",
		WarehouseCode:          "ONT8",
		ShippingStatus:         constants.ShippingStatusShipped,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	withOrder := "SO3001"
	orphan := "SO-GONE"
	date1 := time.Now().UTC().Truncate(time.Second).AddDate(0, 0, -3)
	date2 := date1.AddDate(0, 0, 1)
	exceptions := []models.OrderException{
		{
			OrderCode:     &withOrder,
			ExceptionType: strPtr("轨迹停更"),
			ExceptionNode: strPtr("发货"),
			ExceptionDate: &date1,
			Status:        constants.ExceptionStatusPending,
		},
		{
			// 订单已不存在的异常，关联列应整组为 NULL
			OrderCode:     &orphan,
			ExceptionType: strPtr("时效超期"),
			ExceptionDate: &date2,
			Status:        constants.ExceptionStatusProcessing,
		},
	}
	for i := range exceptions {
		if err := db.Create(&exceptions[i]).Error; err != nil {
			t.Fatalf("create exception failed: %v", err)
		}
	}
	return exceptions[0].ID, exceptions[1].ID
}

func strPtr(s string) *string {
	return &s
}

func TestExceptionRepositoryListLeftJoinKeepsOrphans(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	seedExceptionData(t, db)

	rows, page, err := repo.List(ExceptionListFilter{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalElements != 2 {
		t.Fatalf("expected 2 exceptions, got %d", page.TotalElements)
	}

	var matched, orphan *ExceptionListRow
	for i := range rows {
		switch {
		case rows[i].OrderCode != nil && *rows[i].OrderCode == "SO3001":
			matched = &rows[i]
		case rows[i].OrderCode != nil && *rows[i].OrderCode == "SO-GONE":
			orphan = &rows[i]
		}
	}
	if matched == nil || orphan == nil {
		t.Fatalf("expected both exceptions in result: %+v", rows)
	}
	if matched.ShipmentName == nil || *matched.ShipmentName != "货件丙" {
		t.Fatalf("matched exception should carry order fields: %+v", matched)
	}
	if orphan.ShipmentName != nil || orphan.ProviderCode != nil || orphan.FirstLegTrackingNumber != nil {
		t.Fatalf("orphan exception should have nil order fields: %+v", orphan)
	}
}

func TestExceptionRepositoryListOrderedByCreateTime(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	pendingID, processingID := seedExceptionData(t, db)

	rows, _, err := repo.List(ExceptionListFilter{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// 登记时间降序，后登记的异常在前（异常日期不参与排序）
	if rows[0].ID != processingID || rows[1].ID != pendingID {
		t.Fatalf("rows should be newest first: %d, %d", rows[0].ID, rows[1].ID)
	}
}

func TestExceptionRepositoryListStatusIn(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	seedExceptionData(t, db)

	rows, _, err := repo.List(ExceptionListFilter{
		PageNum:  1,
		PageSize: 10,
		Status:   []string{constants.ExceptionStatusPending},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Status != constants.ExceptionStatusPending {
		t.Fatalf("expected only pending exception, got %+v", rows)
	}

	rows, _, err = repo.List(ExceptionListFilter{
		PageNum:  1,
		PageSize: 10,
		Status:   []string{constants.ExceptionStatusPending, constants.ExceptionStatusProcessing},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both exceptions, got %d", len(rows))
	}
}

func TestExceptionRepositoryGetUpdateAndHandle(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	pendingID, _ := seedExceptionData(t, db)

	exception, err := repo.GetByID(pendingID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if exception == nil || exception.Status != constants.ExceptionStatusPending {
		t.Fatalf("unexpected exception: %+v", exception)
	}

	missing, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing exception should return nil")
	}

	handle := &models.ExceptionHandle{
		ExceptionID:  pendingID,
		OrderCode:    "SO3001",
		Status:       constants.ExceptionStatusClosed,
		Content:      strPtr("已联系物流商恢复推送"),
		OperatorUID:  constants.DefaultOperatorUID,
		OperatorName: constants.DefaultOperatorName,
	}
	if err := repo.CreateHandle(handle); err != nil {
		t.Fatalf("create handle failed: %v", err)
	}

	err = repo.UpdateStatus(pendingID, map[string]interface{}{
		"status":        constants.ExceptionStatusClosed,
		"status_change": 1,
	})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	updated, err := repo.GetByID(pendingID)
	if err != nil {
		t.Fatalf("get updated failed: %v", err)
	}
	if updated.Status != constants.ExceptionStatusClosed {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
}

func TestExceptionRepositoryListLogs(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	pendingID, processingID := seedExceptionData(t, db)

	handles := []models.ExceptionHandle{
		{
			ExceptionID:  pendingID,
			OrderCode:    "SO3001",
			ShipmentName: strPtr("货件丙"),
			Status:       constants.ExceptionStatusProcessing,
			Content:      strPtr("处理中"),
			OperatorUID:  1,
			OperatorName: "admin",
		},
		{
			ExceptionID:  processingID,
			OrderCode:    "SO-GONE",
			Status:       constants.ExceptionStatusClosed,
			Content:      strPtr("关闭"),
			OperatorUID:  2,
			OperatorName: "ops",
		},
	}
	for i := range handles {
		if err := repo.CreateHandle(&handles[i]); err != nil {
			t.Fatalf("create handle failed: %v", err)
		}
	}

	rows, page, err := repo.ListLogs(ExceptionLogListFilter{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if page.TotalElements != 2 || len(rows) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(rows))
	}

	// 关联字段来自异常表与订单表
	var withOrder *ExceptionLogRow
	for i := range rows {
		if rows[i].OrderCode == "SO3001" {
			withOrder = &rows[i]
		}
	}
	if withOrder == nil {
		t.Fatalf("expected log for SO3001")
	}
	if withOrder.ExceptionType == nil || *withOrder.ExceptionType != "轨迹停更" {
		t.Fatalf("log should carry exception type: %+v", withOrder)
	}
	if withOrder.FirstLegTrackingNumber == nil || *withOrder.FirstLegTrackingNumber != "FL-E-001" {
		t.Fatalf("log should carry order tracking number: %+v", withOrder)
	}

	// 按异常 ID 过滤
	rows, _, err = repo.ListLogs(ExceptionLogListFilter{PageNum: 1, PageSize: 10, ExceptionID: processingID})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ExceptionID != processingID {
		t.Fatalf("expected single log for exception %d, got %+v", processingID, rows)
	}
}

func TestExceptionRepositoryListLogsShipmentNameFromOrder(t *testing.T) {
	repo, db := setupExceptionRepositoryTest(t)
	pendingID, _ := seedExceptionData(t, db)

	// 处置行未冗余货件名，过滤仍应命中订单表上的货件名
	handle := models.ExceptionHandle{
		ExceptionID:  pendingID,
		OrderCode:    "SO3001",
		Status:       constants.ExceptionStatusProcessing,
		Content:      strPtr("处理中"),
		OperatorUID:  1,
		OperatorName: "admin",
	}
	if err := repo.CreateHandle(&handle); err != nil {
		t.Fatalf("create handle failed: %v", err)
	}

	rows, _, err := repo.ListLogs(ExceptionLogListFilter{
		PageNum:      1,
		PageSize:     10,
		ShipmentName: "货件丙",
	})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(rows) != 1 || rows[0].OrderCode != "SO3001" {
		t.Fatalf("shipment name filter should match via order join, got %+v", rows)
	}

	rows, _, err = repo.ListLogs(ExceptionLogListFilter{
		PageNum:      1,
		PageSize:     10,
		ShipmentName: "不存在的货件",
	})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("unknown shipment name should not match, got %+v", rows)
	}
}
