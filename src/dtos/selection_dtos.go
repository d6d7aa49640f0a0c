package dtos

import "github.com/hotelops/backoffice/src/selection"

type ResolveSelectionRequest struct {
	ChangedField string              `json:"changed_field" validate:"required"`
	NewValue     int                 `json:"new_value" validate:"gte=0"`
	Selection    selection.Selection `json:"selection"`
}

type ResolveSelectionResponse struct {
	selection.Result
	Options []GeoOption `json:"options"`
}
