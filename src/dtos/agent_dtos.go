package dtos

type AgentRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Phone      string  `json:"phone" validate:"required,max=20"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Address    *string `json:"address"`
	CountryID  int     `json:"country_id" validate:"required,gt=0"`
	StateID    int     `json:"state_id" validate:"required,gt=0"`
	DistrictID int     `json:"district_id" validate:"required,gt=0"`
	ZoneID     int     `json:"zone_id" validate:"required,gt=0"`
	Status     *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type AgentFilter struct {
	CountryID  *int
	StateID    *int
	DistrictID *int
	ZoneID     *int
	Status     *int
}
