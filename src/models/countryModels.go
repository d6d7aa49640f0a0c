package models

type CountryModel struct {
	ID      int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string  `json:"name" gorm:"column:name;type:varchar(255);not null;uniqueIndex"`
	Code    string  `json:"code" gorm:"column:code;type:varchar(3);not null;uniqueIndex"`
	Capital *string `json:"capital" gorm:"column:capital;type:varchar(255)"`
	Status  int     `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (CountryModel) TableName() string { return "countries" }
