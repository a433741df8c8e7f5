package entity

import "strconv"

// Category представляет категорию вопросов
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryMap преобразует список категорий в словарь {"id": type},
// в котором категории отдаются клиенту.
func CategoryMap(categories []Category) map[string]string {
	result := make(map[string]string, len(categories))
	for _, c := range categories {
		result[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return result
}
