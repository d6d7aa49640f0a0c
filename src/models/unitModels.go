package models

type UnitModel struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	ShortName string `json:"short_name" gorm:"column:short_name;type:varchar(10)"`
	Status    int    `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (UnitModel) TableName() string { return "units" }
