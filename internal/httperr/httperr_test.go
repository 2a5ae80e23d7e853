package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("invalid_reference"))

	assert.True(t, IsBusiness(err, "invalid_reference"))
	assert.False(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(errors.New("invalid_reference"), "invalid_reference"))
	assert.Equal(t, "invalid_reference", ErrBusiness("invalid_reference").Error())
}

func TestWriters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		code   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "invalid_id", "bad") }, http.StatusBadRequest, "invalid_id"},
		{"invalid", func(c *gin.Context) { Invalid(c, errors.New("name is required")) }, http.StatusBadRequest, "invalid_request"},
		{"not found", func(c *gin.Context) { NotFound(c, "barber_not_found", "Barber not found") }, http.StatusNotFound, "barber_not_found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "invalid_reference", "nope") }, http.StatusConflict, "invalid_reference"},
		{"internal", func(c *gin.Context) { Internal(c, "boom", "boom") }, http.StatusInternalServerError, "boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.write(c)

			assert.Equal(t, tc.status, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
