package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain error passes through", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"wrapped domain error", fmt.Errorf("gate: %w", NewUnauthenticated("bad token", http.StatusForbidden)), CodeUnauthenticated, http.StatusForbidden},
		{"fiber bad request", fiber.NewError(http.StatusBadRequest, "bad body"), CodeValidationFailed, http.StatusBadRequest},
		{"fiber not found", fiber.ErrNotFound, CodeNotFound, http.StatusNotFound},
		{"store failure", storeErr, CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
	assert.ErrorIs(t, ToDomainError(storeErr), storeErr)
}
