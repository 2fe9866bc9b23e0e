package repository

import "gorm.io/gorm"

// joinClause 关联表声明：目标表与连接条件。
// 列表接口的冗余展示字段都通过这里声明的 LEFT JOIN 获得，
// 关联表无匹配行时主表行保留，关联列为 NULL。
type joinClause struct {
	table string
	on    string
}

// applyLeftJoins 依次应用 LEFT JOIN 声明
func applyLeftJoins(query *gorm.DB, joins []joinClause) *gorm.DB {
	for _, j := range joins {
		query = query.Joins("LEFT JOIN " + j.table + " ON " + j.on)
	}
	return query
}
