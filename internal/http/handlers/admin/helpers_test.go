package admin

import (
	"testing"
)

func TestNormalizePagination(t *testing.T) {
	pageNum, pageSize := normalizePagination(0, 0)
	if pageNum != 1 || pageSize != 10 {
		t.Fatalf("defaults should be 1/10, got %d/%d", pageNum, pageSize)
	}
	_, pageSize = normalizePagination(1, 500)
	if pageSize != 100 {
		t.Fatalf("page size should cap at 100, got %d", pageSize)
	}
	pageNum, pageSize = normalizePagination(3, 20)
	if pageNum != 3 || pageSize != 20 {
		t.Fatalf("valid values should pass through, got %d/%d", pageNum, pageSize)
	}
}

func TestParseTimeRange(t *testing.T) {
	span, err := parseTimeRange([]string{"2026-08-01", "2026-08-15 23:59:59"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(span) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(span))
	}
	if span[0].Format("2006-01-02") != "2026-08-01" {
		t.Fatalf("unexpected first endpoint: %v", span[0])
	}
	if span[1].Hour() != 23 || span[1].Minute() != 59 {
		t.Fatalf("unexpected second endpoint: %v", span[1])
	}

	// 非两元素视为未传
	span, err = parseTimeRange([]string{"2026-08-01"})
	if err != nil || span != nil {
		t.Fatalf("single element should be ignored, got %v / %v", span, err)
	}
	span, err = parseTimeRange(nil)
	if err != nil || span != nil {
		t.Fatalf("nil should be ignored, got %v / %v", span, err)
	}

	if _, err := parseTimeRange([]string{"2026-08-01", "not-a-date"}); err == nil {
		t.Fatalf("invalid date should fail")
	}
}

func TestParseBoolNullable(t *testing.T) {
	value, err := parseBoolNullable("")
	if err != nil || value != nil {
		t.Fatalf("empty should be nil, got %v / %v", value, err)
	}
	value, err = parseBoolNullable("true")
	if err != nil || value == nil || !*value {
		t.Fatalf("true should parse, got %v / %v", value, err)
	}
	value, err = parseBoolNullable("false")
	if err != nil || value == nil || *value {
		t.Fatalf("false should parse, got %v / %v", value, err)
	}
	if _, err := parseBoolNullable("maybe"); err == nil {
		t.Fatalf("invalid bool should fail")
	}
}

func TestParseUintParam(t *testing.T) {
	id, err := parseUintParam("42")
	if err != nil || id != 42 {
		t.Fatalf("expected 42, got %d / %v", id, err)
	}
	if _, err := parseUintParam("0"); err == nil {
		t.Fatalf("zero id should fail")
	}
	if _, err := parseUintParam("abc"); err == nil {
		t.Fatalf("non-numeric id should fail")
	}
}
