package admin

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 时间区间查询参数接受的格式
var timeRangeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizePagination 归一化分页参数
func normalizePagination(pageNum, pageSize int) (int, int) {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageNum, pageSize
}

// parseTimeRange 解析时间区间参数
// 非两元素数组视为未传，元素解析失败返回错误。
func parseTimeRange(raw []string) ([]time.Time, error) {
	if len(raw) != 2 {
		return nil, nil
	}
	span := make([]time.Time, 0, 2)
	for _, item := range raw {
		item = strings.TrimSpace(item)
		parsed, err := parseTimeValue(item)
		if err != nil {
			return nil, fmt.Errorf("非法的时间参数: %s", item)
		}
		span = append(span, parsed)
	}
	return span, nil
}

func parseTimeValue(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeRangeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseBoolNullable 解析三态布尔参数，空串返回 nil
func parseBoolNullable(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("非法的布尔参数: %s", raw)
	}
	return &value, nil
}

// parseUintParam 解析路径中的数字 ID
func parseUintParam(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("非法的 ID 参数: %s", raw)
	}
	return uint(parsed), nil
}
