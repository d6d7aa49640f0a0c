package models

type AddonModel struct {
	ID             int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string     `json:"name" gorm:"column:name;type:varchar(255);not null;uniqueIndex"`
	Description    string     `json:"description" gorm:"column:description;type:text"`
	Rate           float64    `json:"rate" gorm:"column:rate;type:decimal(10,2);not null"`
	UnitID         int        `json:"unit_id" gorm:"column:unit_id;not null;index"`
	Unit           *UnitModel `json:"-" gorm:"foreignKey:UnitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UnitName       string     `json:"unit_name" gorm:"->;-:migration"`
	UnitConversion float64    `json:"unit_conversion" gorm:"column:unit_conversion;type:decimal(10,3);not null"`
	Status         int        `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (AddonModel) TableName() string { return "addons" }
