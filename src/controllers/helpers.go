package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/dtos"
	"github.com/hotelops/backoffice/src/middleware"
)

// parseID reads the :id path parameter. It writes a 400 and returns false when the id is not a positive integer.
func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		respondError(ctx, apperrors.Validation("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondError(ctx, apperrors.Validation("body", "malformed JSON: "+err.Error()))
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter.
func queryInt(ctx *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(key, "must be an integer")
	}
	return &v, nil
}

// queryInts parses several optional integer query parameters at once.
func queryInts(ctx *gin.Context, keys ...string) (map[string]*int, error) {
	out := make(map[string]*int, len(keys))
	verr := &apperrors.ValidationError{}
	for _, key := range keys {
		v, err := queryInt(ctx, key)
		if err != nil {
			verr.Add(key, "must be an integer")
			continue
		}
		out[key] = v
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func cascadeFlag(ctx *gin.Context) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(ctx.Query("cascade")))
	return err == nil && v
}

// fillAudit defaults the audit ids to the authenticated user.
func fillAudit(ctx *gin.Context, audit *dtos.AuditInput, creating bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		return
	}
	if creating && audit.CreatedByID == nil {
		audit.CreatedByID = &userID
	}
	if audit.UpdatedByID == nil {
		audit.UpdatedByID = &userID
	}
}
