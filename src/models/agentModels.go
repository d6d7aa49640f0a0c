package models

// AgentModel references one row at every level of the geo hierarchy.
type AgentModel struct {
	ID           int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string         `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Phone        string         `json:"phone" gorm:"column:phone;type:varchar(20);not null"`
	Email        *string        `json:"email" gorm:"column:email;type:varchar(255)"`
	Address      *string        `json:"address" gorm:"column:address;type:text"`
	CountryID    int            `json:"country_id" gorm:"column:country_id;not null;index"`
	Country      *CountryModel  `json:"-" gorm:"foreignKey:CountryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StateID      int            `json:"state_id" gorm:"column:state_id;not null;index"`
	State        *StateModel    `json:"-" gorm:"foreignKey:StateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DistrictID   int            `json:"district_id" gorm:"column:district_id;not null;index"`
	District     *DistrictModel `json:"-" gorm:"foreignKey:DistrictID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ZoneID       int            `json:"zone_id" gorm:"column:zone_id;not null;index"`
	Zone         *ZoneModel     `json:"-" gorm:"foreignKey:ZoneID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CountryName  string         `json:"country_name" gorm:"->;-:migration"`
	StateName    string         `json:"state_name" gorm:"->;-:migration"`
	DistrictName string         `json:"district_name" gorm:"->;-:migration"`
	ZoneName     string         `json:"zone_name" gorm:"->;-:migration"`
	Status       int            `json:"status" gorm:"column:status;type:smallint;not null"`
	Audit
}

func (AgentModel) TableName() string { return "agents" }
