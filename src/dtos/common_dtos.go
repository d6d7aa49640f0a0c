package dtos

// AuditInput is accepted by every mutating request. Missing ids default to the authenticated user.
type AuditInput struct {
	CreatedByID *int `json:"created_by_id" validate:"omitempty,gt=0"`
	UpdatedByID *int `json:"updated_by_id" validate:"omitempty,gt=0"`
}

// MessageResponse is returned by updates and deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
