package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/apperrors"
)

type errorBody struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, apperrors.ErrReference):
		return http.StatusBadRequest, "reference_error"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrIntegrity):
		return http.StatusInternalServerError, "integrity_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// respondError writes the error envelope. Messages of unclassified errors stay in the log.
func respondError(ctx *gin.Context, err error) {
	err = apperrors.MapError(err)
	status, code := statusOf(err)
	body := errorBody{Code: code}

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Message = apperrors.ErrValidation.Error()
		body.Fields = verr.Fields
	case code == "internal_error":
		body.Message = "internal server error"
	case code == "integrity_error":
		body.Message = "write failed and was rolled back"
	default:
		body.Message = strings.ReplaceAll(err.Error(), "\n", ": ")
	}

	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, errorResponse{Error: body})
}
