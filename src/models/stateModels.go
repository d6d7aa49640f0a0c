package models

type StateModel struct {
	ID          int           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string        `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Code        string        `json:"code" gorm:"column:code;type:varchar(2);not null;uniqueIndex:idx_state_country_code"`
	Capital     *string       `json:"capital" gorm:"column:capital;type:varchar(255)"`
	CountryID   int           `json:"country_id" gorm:"column:country_id;not null;index;uniqueIndex:idx_state_country_code"`
	Country     *CountryModel `json:"-" gorm:"foreignKey:CountryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CountryName string        `json:"country_name" gorm:"->;-:migration"`
	Status      int           `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (StateModel) TableName() string { return "states" }
