package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "safe-rescue.backend/internal/domain/errors"
)

func TestError_MapsDomainTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domainerrors.Validation("name", "required"), http.StatusBadRequest, "ERR_VALIDATION"},
		{"not found", domainerrors.NotFoundID("team", 9), http.StatusNotFound, "ERR_NOT_FOUND"},
		{"conflict", domainerrors.Conflict("duplicate"), http.StatusConflict, "ERR_CONFLICT"},
		{"bad request", domainerrors.BadRequest("malformed"), http.StatusBadRequest, "ERR_BAD_REQUEST"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "ERR_INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantCode)
		})
	}
}
