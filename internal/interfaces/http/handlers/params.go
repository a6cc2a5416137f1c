package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "safe-rescue.backend/internal/domain/errors"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest("invalid " + name)
	}
	return uint(id), nil
}

// parseIDListParam parses a comma-separated id list path segment
func parseIDListParam(c *gin.Context, name string) ([]uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid " + name)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
