package models

type CategoryModel struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;type:varchar(255);not null;uniqueIndex"`
	Description string `json:"description" gorm:"column:description;type:text"`
	Status      int    `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (CategoryModel) TableName() string { return "categories" }
