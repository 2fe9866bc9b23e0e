package main

import (
	"fmt"
	"time"

	"github.com/shiptrack-next/internal/config"
	"github.com/shiptrack-next/internal/constants"
	"github.com/shiptrack-next/internal/logger"
	"github.com/shiptrack-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()
	shippingDate := now.AddDate(0, 0, -20)
	departureDate := now.AddDate(0, 0, -18)
	portArrivalDate := now.AddDate(0, 0, -6)
	flagged := 1

	// 出货订单
	orders := []models.ShipmentOrder{
		{
			OrderCode:              "SO202608150001",
			FirstLegTrackingNumber: "FL88012345US",
			LastMileTrackingNumber: strPtr("1Z999AA10123456784"),
			ShipmentName:           "FBA-八月海运-01",
			ProviderCode:           "SEALINK",
			CountryCode:            strPtr("US"),
			WarehouseCode:          "ONT8",
			ItemNum:                1200,
			ShippingChannel:        strPtr("美森快船"),
			ShippingMethod:         strPtr("SEA"),
			BoxNum:                 intPtr(48),
			Weight:                 models.NewAmount(decimal.NewFromFloat(860.5)),
			BillingHeavy:           models.NewAmount(decimal.NewFromFloat(900)),
			Freight:                models.NewAmount(decimal.NewFromFloat(12600)),
			ShippingDate:           &shippingDate,
			DepartureDate:          &departureDate,
			PortArrivalDate:        &portArrivalDate,
			ShippingStatus:         constants.ShippingStatusArrived,
		},
		{
			OrderCode:              "SO202608220002",
			FirstLegTrackingNumber: "FL88019876US",
			ShipmentName:           "FBA-八月空运-02",
			ProviderCode:           "AIREXP",
			CountryCode:            strPtr("DE"),
			WarehouseCode:          "LEJ1",
			ItemNum:                300,
			ShippingMethod:         strPtr("AIR"),
			BoxNum:                 intPtr(12),
			Weight:                 models.NewAmount(decimal.NewFromFloat(210)),
			ShippingDate:           &departureDate,
			ShippingStatus:         constants.ShippingStatusShipped,
			IsException:            &flagged,
		},
	}
	for i := range orders {
		if err := models.DB.Create(&orders[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed order: %v", err)
		}
	}

	// 头程轨迹节点
	trackTime := now.AddDate(0, 0, -7)
	nodes := []models.FirstLegTracking{
		{
			OrderCode:      "SO202608150001",
			NodeID:         "NODE-ARR-001",
			TrackTime:      &trackTime,
			TrackContent:   "Vessel arrived at port of Long Beach",
			TrackType:      strPtr("ARRIVED"),
			TrackNode:      strPtr("到港"),
			NodeDate:       &portArrivalDate,
			Confidence:     models.NewAmount(decimal.NewFromFloat(0.97)),
			IdentifyStatus: constants.IdentifyStatusAutoAccepted,
		},
		{
			OrderCode:      "SO202608150001",
			NodeID:         "NODE-DLV-002",
			TrackTime:      &now,
			TrackContent:   "Out for delivery to Amazon ONT8",
			TrackType:      strPtr("DELIVERY"),
			TrackNode:      strPtr("派送"),
			Confidence:     models.NewAmount(decimal.NewFromFloat(0.52)),
			IdentifyStatus: constants.IdentifyStatusPendingReview,
		},
	}
	for i := range nodes {
		if err := models.DB.Create(&nodes[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed tracking node: %v", err)
		}
	}

	// 订单异常
	exceptionDate := now.AddDate(0, 0, -2)
	exception := models.OrderException{
		OrderCode:         strPtr("SO202608220002"),
		ExceptionType:     strPtr("轨迹停更"),
		ExceptionNode:     strPtr("发货"),
		ExceptionDate:     &exceptionDate,
		Status:            constants.ExceptionStatusPending,
		ExceptionDescribe: strPtr("发货后 5 天无轨迹更新"),
		IdentifyTime:      &exceptionDate,
	}
	if err := models.DB.Create(&exception).Error; err != nil {
		stdLog.Fatalf("Failed to seed exception: %v", err)
	}

	// 物流商原始轨迹
	raw := models.ProviderTracking{
		OrderCode:              "SO202608150001",
		FirstLegTrackingNumber: strPtr("FL88012345US"),
		FirstLegTracking:       `[{"time":"2026-08-24 09:30:00","content":"Vessel arrived at port of Long Beach"}]`,
	}
	if err := models.DB.Create(&raw).Error; err != nil {
		stdLog.Fatalf("Failed to seed provider tracking: %v", err)
	}

	fmt.Println("Seed data created:")
	fmt.Printf("  - %d shipment orders\n", len(orders))
	fmt.Printf("  - %d tracking nodes\n", len(nodes))
	fmt.Println("  - 1 order exception")
	fmt.Println("  - 1 provider tracking record")
}

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}
