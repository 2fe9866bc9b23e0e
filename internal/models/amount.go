package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount 统一金额/重量类型（可空，保留 2 位小数）
// 费用类字段在数据库中允许 NULL，NULL 与 0 含义不同，序列化时原样输出 null。
type Amount struct {
	decimal.NullDecimal
}

// NewAmount 从 decimal 创建金额
func NewAmount(d decimal.Decimal) Amount {
	return Amount{NullDecimal: decimal.NullDecimal{Decimal: d.Round(2), Valid: true}}
}

// NewAmountFromString 从字符串创建金额
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d), nil
}

// MarshalJSON 输出 2 位小数的字符串，空值输出 null
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return json.Marshal(nil)
	}
	return json.Marshal(a.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析金额（null、字符串或数字）
func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		a.Valid = false
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			a.Valid = false
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		a.Decimal = d.Round(2)
		a.Valid = true
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	a.Decimal = decimal.NewFromFloat(f).Round(2)
	a.Valid = true
	return nil
}

// Value 用于数据库写入
func (a Amount) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (a *Amount) Scan(value interface{}) error {
	if value == nil {
		a.Valid = false
		return nil
	}
	if err := a.Decimal.Scan(value); err != nil {
		return err
	}
	a.Valid = true
	return nil
}

// String 返回 2 位小数格式，空值返回空字符串
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Decimal.Round(2).StringFixed(2)
}
