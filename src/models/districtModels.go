package models

type DistrictModel struct {
	ID          int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string      `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Code        string      `json:"code" gorm:"column:code;type:varchar(4);not null;uniqueIndex:idx_district_state_code"`
	StateID     int         `json:"state_id" gorm:"column:state_id;not null;index;uniqueIndex:idx_district_state_code"`
	State       *StateModel `json:"-" gorm:"foreignKey:StateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StateName   string      `json:"state_name" gorm:"->;-:migration"`
	Description *string     `json:"description" gorm:"column:description;type:text"`
	Status      int         `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (DistrictModel) TableName() string { return "districts" }
