package dtos

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Status      *int   `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type UnitRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	ShortName string `json:"short_name" validate:"max=10"`
	Status    *int   `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}

type AddonRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Description    string  `json:"description"`
	Rate           float64 `json:"rate" validate:"gte=0"`
	UnitID         int     `json:"unit_id" validate:"required,gt=0"`
	UnitConversion float64 `json:"unit_conversion" validate:"gte=0"`
	Status         *int    `json:"status" validate:"omitempty,oneof=0 1"`
	AuditInput
}
