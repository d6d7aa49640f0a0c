package models

type ZoneModel struct {
	ID           int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string         `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Code         string         `json:"code" gorm:"column:code;type:varchar(3);not null;uniqueIndex:idx_zone_district_code"`
	DistrictID   int            `json:"district_id" gorm:"column:district_id;not null;index;uniqueIndex:idx_zone_district_code"`
	District     *DistrictModel `json:"-" gorm:"foreignKey:DistrictID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DistrictName string         `json:"district_name" gorm:"->;-:migration"`
	Description  *string        `json:"description" gorm:"column:description;type:text"`
	Status       int            `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (ZoneModel) TableName() string { return "zones" }
