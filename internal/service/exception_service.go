package service

import (
	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/models"
	"github.com/shiptrack-next/internal/repository"
)

// ExceptionService 订单异常服务
type ExceptionService struct {
	exceptionRepo repository.ExceptionRepository
}

// NewExceptionService 创建异常服务
func NewExceptionService(exceptionRepo repository.ExceptionRepository) *ExceptionService {
	return &ExceptionService{exceptionRepo: exceptionRepo}
}

// ListExceptions 异常列表
func (s *ExceptionService) ListExceptions(filter repository.ExceptionListFilter) ([]repository.ExceptionListRow, repository.PageResult, error) {
	rows, page, err := s.exceptionRepo.List(filter)
	if err != nil {
		logger.Errorw("exception_list_failed", "error", err)
		return nil, repository.PageResult{}, ErrExceptionListFailed
	}
	return rows, page, nil
}

// ProcessRequest 异常处置输入
type ProcessRequest struct {
	Status       string `json:"status" binding:"required,oneof=PENDING PROCESSING CLOSED"`
	Content      string `json:"content" binding:"required"`
	OperatorUID  int    `json:"operatorUid"`
	OperatorName string `json:"operatorName"`
}

// ProcessException 处置异常
// 先追加处置记录，再更新异常状态。两次写入相互独立不做事务：
// 处置记录成功而状态更新失败时，记录保留，接口返回失败由调用方重试。
func (s *ExceptionService) ProcessException(id uint, req ProcessRequest) (*models.OrderException, error) {
	exception, err := s.exceptionRepo.GetByID(id)
	if err != nil {
		logger.Errorw("exception_fetch_failed", "exception_id", id, "error", err)
		return nil, ErrExceptionProcessFailed
	}
	if exception == nil {
		return nil, ErrExceptionNotFound
	}

	operatorUID, operatorName := normalizeOperator(req.OperatorUID, req.OperatorName)
	orderCode := ""
	if exception.OrderCode != nil {
		orderCode = *exception.OrderCode
	}
	handle := &models.ExceptionHandle{
		ExceptionID:  exception.ID,
		OrderCode:    orderCode,
		Status:       req.Status,
		Content:      &req.Content,
		OperatorUID:  operatorUID,
		OperatorName: operatorName,
	}
	if err := s.exceptionRepo.CreateHandle(handle); err != nil {
		logger.Errorw("exception_handle_create_failed", "exception_id", exception.ID, "error", err)
		return nil, ErrExceptionProcessFailed
	}

	statusChange := 0
	if exception.Status != req.Status {
		statusChange = 1
	}
	updates := map[string]interface{}{
		"status":          req.Status,
		"status_change":   statusChange,
		"operator_uid":    operatorUID,
		"operator_name":   operatorName,
		"operate_content": req.Content,
	}
	if err := s.exceptionRepo.UpdateStatus(exception.ID, updates); err != nil {
		logger.Errorw("exception_status_update_failed", "exception_id", exception.ID, "error", err)
		return nil, ErrExceptionProcessFailed
	}

	updated, err := s.exceptionRepo.GetByID(exception.ID)
	if err != nil || updated == nil {
		logger.Errorw("exception_reload_failed", "exception_id", exception.ID, "error", err)
		return nil, ErrExceptionProcessFailed
	}
	return updated, nil
}

// ListLogs 异常处置记录列表
func (s *ExceptionService) ListLogs(filter repository.ExceptionLogListFilter) ([]repository.ExceptionLogRow, repository.PageResult, error) {
	rows, page, err := s.exceptionRepo.ListLogs(filter)
	if err != nil {
		logger.Errorw("exception_log_list_failed", "error", err)
		return nil, repository.PageResult{}, ErrExceptionLogFailed
	}
	return rows, page, nil
}
