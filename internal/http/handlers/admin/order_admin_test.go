package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/http/response"
	"github.com/shiptrack-next/internal/models"
	"github.com/shiptrack-next/internal/provider"
	"github.com/shiptrack-next/internal/repository"
	"github.com/shiptrack-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ShipmentOrder{},
		&models.FirstLegTracking{},
		&models.OrderException{},
		&models.ExceptionHandle{},
		&models.ProviderTracking{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	exceptionRepo := repository.NewExceptionRepository(db)
	h := &Handler{Container: &provider.Container{
		OrderRepo:        orderRepo,
		TrackingRepo:     trackingRepo,
		ExceptionRepo:    exceptionRepo,
		OrderService:     service.NewOrderService(orderRepo),
		TrackingService:  service.NewTrackingService(trackingRepo, orderRepo),
		ExceptionService: service.NewExceptionService(exceptionRepo),
	}}

	r := gin.New()
	r.GET("/api/v1/shipments/orders", h.ListOrders)
	r.GET("/api/v1/shipments/orders/:order_code", h.GetOrder)
	r.PUT("/api/v1/shipments/orders/:order_code", h.UpdateOrder)
	r.POST("/api/v1/shipments/exceptions/:id/processing", h.ProcessException)
	return r, db
}

func seedAdminHandlerOrders(t *testing.T, db *gorm.DB) {
	t.Helper()
	for i := 1; i <= 3; i++ {
		order := models.ShipmentOrder{
			OrderCode:              fmt.Sprintf("SO70%02d", i),
			FirstLegTrackingNumber: fmt.Sprintf("FL-70%02d", i),
			ShipmentName:           "接口测试货件",
			ProviderCode:           "SEALINK",
			WarehouseCode:          "ONT8",
			ShippingStatus:         constants.ShippingStatusShipped,
		}
		if err := db.Create(&order).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func TestListOrdersEndpoint(t *testing.T) {
	r, db := setupAdminHandlerTest(t)
	seedAdminHandlerOrders(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/orders?pageNum=1&pageSize=2&orderCode=SO70", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body.Code != response.CodeSuccess {
		t.Fatalf("unexpected code: %s", body.Code)
	}

	var page struct {
		TotalElements int64             `json:"totalElements"`
		TotalPages    int64             `json:"totalPages"`
		PageSize      int               `json:"pageSize"`
		PageNum       int               `json:"pageNum"`
		Content       []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(body.Result, &page); err != nil {
		t.Fatalf("unmarshal page failed: %v", err)
	}
	if page.TotalElements != 3 || page.TotalPages != 2 {
		t.Fatalf("unexpected page info: %+v", page)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page.Content))
	}
}

func TestListOrdersEndpointRejectsBadStatus(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/orders?shippingStatus=FLYING", nil)
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body.Code != response.CodeBadRequest {
		t.Fatalf("invalid status should be bad request, got %s", body.Code)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/orders/SO-MISSING", nil)
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body.Code != response.CodeNotFound {
		t.Fatalf("missing order should be not found, got %s", body.Code)
	}
}

func TestUpdateOrderEndpoint(t *testing.T) {
	r, db := setupAdminHandlerTest(t)
	seedAdminHandlerOrders(t, db)

	payload := `{"shipmentName":"接口测试货件","providerCode":"SEALINK","warehouseCode":"ONT8","shippingStatus":"DEPARTURE","remark":"已开船"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shipments/orders/SO7001", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body.Code != response.CodeSuccess {
		t.Fatalf("unexpected code: %s (%s)", body.Code, body.Message)
	}

	var order models.ShipmentOrder
	if err := db.Where("order_code = ?", "SO7001").First(&order).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.ShippingStatus != constants.ShippingStatusDeparture {
		t.Fatalf("unexpected status: %s", order.ShippingStatus)
	}
}

func TestProcessExceptionEndpointValidation(t *testing.T) {
	r, _ := setupAdminHandlerTest(t)

	// 非法状态被 binding 拦截
	payload := `{"status":"DONE","content":"x"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments/exceptions/1/processing", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body failed: %v", err)
	}
	if body.Code != response.CodeBadRequest {
		t.Fatalf("invalid status should be bad request, got %s", body.Code)
	}
}
