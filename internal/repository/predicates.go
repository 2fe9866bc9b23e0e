package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// applyEqual 等值条件，空值不生效
func applyEqual(query *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return query
	}
	return query.Where(column+" = ?", value)
}

// applyContains 子串模糊条件，空值不生效
func applyContains(query *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return query
	}
	return query.Where(column+" "+likeOperator(query)+" ?", "%"+value+"%")
}

// applyBetween 时间区间条件
// 仅在恰好两个端点时生效，端点先排序（调用方传入顺序不可信）。
func applyBetween(query *gorm.DB, column string, span []time.Time) *gorm.DB {
	if len(span) != 2 {
		return query
	}
	lo, hi := span[0], span[1]
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return query.Where(column+" BETWEEN ? AND ?", lo, hi)
}

// applyIn 集合条件，空集合不生效
func applyIn(query *gorm.DB, column string, values []string) *gorm.DB {
	if len(values) == 0 {
		return query
	}
	return query.Where(column+" IN ?", values)
}

// applyBoolEqual 三态布尔条件：nil 不生效，false 是有效过滤值
func applyBoolEqual(query *gorm.DB, column string, value *bool) *gorm.DB {
	if value == nil {
		return query
	}
	n := 0
	if *value {
		n = 1
	}
	return query.Where(column+" = ?", n)
}
