package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/models"
	"github.com/shiptrack-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupExceptionServiceTest(t *testing.T) (*ExceptionService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:exception_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	return NewExceptionService(repository.NewExceptionRepository(db)), db
}

func createTestException(t *testing.T, db *gorm.DB, orderCode string, status string) *models.OrderException {
	t.Helper()
	date := time.Now().UTC().Truncate(time.Second).AddDate(0, 0, -1)
	exception := &models.OrderException{
		OrderCode:     &orderCode,
		ExceptionType: strPtr("轨迹停更"),
		ExceptionDate: &date,
		Status:        status,
	}
	if err := db.Create(exception).Error; err != nil {
		t.Fatalf("create exception failed: %v", err)
	}
	return exception
}

func TestProcessExceptionWritesHandleAndStatus(t *testing.T) {
	svc, db := setupExceptionServiceTest(t)
	exception := createTestException(t, db, "SO4001", constants.ExceptionStatusPending)

	updated, err := svc.ProcessException(exception.ID, ProcessRequest{
		Status:       constants.ExceptionStatusClosed,
		Content:      "已联系物流商，轨迹恢复",
		OperatorUID:  7,
		OperatorName: "tracker",
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if updated.Status != constants.ExceptionStatusClosed {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if updated.StatusChange == nil || *updated.StatusChange != 1 {
		t.Fatalf("status change flag should be set: %v", updated.StatusChange)
	}
	if updated.OperatorName == nil || *updated.OperatorName != "tracker" {
		t.Fatalf("unexpected operator: %v", updated.OperatorName)
	}

	var handles []models.ExceptionHandle
	if err := db.Where("exception_id = ?", exception.ID).Find(&handles).Error; err != nil {
		t.Fatalf("load handles failed: %v", err)
	}
	if len(handles) != 1 {
		t.Fatalf("expected exactly one handle record, got %d", len(handles))
	}
	if handles[0].Status != constants.ExceptionStatusClosed {
		t.Fatalf("handle should record new status: %s", handles[0].Status)
	}
	if handles[0].OrderCode != "SO4001" {
		t.Fatalf("handle should carry order code: %s", handles[0].OrderCode)
	}
	if handles[0].OperatorUID != 7 {
		t.Fatalf("unexpected handle operator uid: %d", handles[0].OperatorUID)
	}
}

func TestProcessExceptionSameStatusKeepsChangeFlag(t *testing.T) {
	svc, db := setupExceptionServiceTest(t)
	exception := createTestException(t, db, "SO4002", constants.ExceptionStatusProcessing)

	updated, err := svc.ProcessException(exception.ID, ProcessRequest{
		Status:  constants.ExceptionStatusProcessing,
		Content: "继续跟进",
	})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if updated.StatusChange == nil || *updated.StatusChange != 0 {
		t.Fatalf("same status should not set change flag: %v", updated.StatusChange)
	}
	// 操作人缺省回落到系统管理员
	if updated.OperatorUID == nil || *updated.OperatorUID != constants.DefaultOperatorUID {
		t.Fatalf("unexpected default operator uid: %v", updated.OperatorUID)
	}
	if updated.OperatorName == nil || *updated.OperatorName != constants.DefaultOperatorName {
		t.Fatalf("unexpected default operator name: %v", updated.OperatorName)
	}
}

func TestProcessExceptionNotFound(t *testing.T) {
	svc, _ := setupExceptionServiceTest(t)

	_, err := svc.ProcessException(99999, ProcessRequest{
		Status:  constants.ExceptionStatusClosed,
		Content: "nope",
	})
	if !errors.Is(err, ErrExceptionNotFound) {
		t.Fatalf("expected ErrExceptionNotFound, got %v", err)
	}
}

func TestListExceptionsAndLogs(t *testing.T) {
	svc, db := setupExceptionServiceTest(t)
	exception := createTestException(t, db, "SO4003", constants.ExceptionStatusPending)

	if _, err := svc.ProcessException(exception.ID, ProcessRequest{
		Status:  constants.ExceptionStatusProcessing,
		Content: "处理中",
	}); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	rows, page, err := svc.ListExceptions(repository.ExceptionListFilter{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list exceptions failed: %v", err)
	}
	if page.TotalElements != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 exception, got %d", len(rows))
	}

	logs, logPage, err := svc.ListLogs(repository.ExceptionLogListFilter{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if logPage.TotalElements != 1 || len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].ExceptionID != exception.ID {
		t.Fatalf("unexpected log exception id: %d", logs[0].ExceptionID)
	}
}

func strPtr(s string) *string {
	return &s
}
