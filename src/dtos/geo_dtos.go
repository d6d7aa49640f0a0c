package dtos

type CountryRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Code    string  `json:"code" validate:"required,max=3"`
	Capital *string `json:"capital" validate:"omitempty,max=255"`
	Status  *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type StateRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Code      string  `json:"code" validate:"required,len=2"`
	Capital   *string `json:"capital" validate:"omitempty,max=255"`
	CountryID int     `json:"country_id" validate:"required,gt=0"`
	Status    *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type DistrictRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Code        string  `json:"code" validate:"required,len=4"`
	StateID     int     `json:"state_id" validate:"required,gt=0"`
	Description *string `json:"description"`
	Status      *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type ZoneRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Code        string  `json:"code" validate:"required,max=3"`
	DistrictID  int     `json:"district_id" validate:"required,gt=0"`
	Description *string `json:"description"`
	Status      *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

// GeoFilter scopes geo listings. ParentID nil lists every row.
type GeoFilter struct {
	ParentID *int
	Status   *int
}

// GeoOption is one entry of a cascading dropdown.
type GeoOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
