package handlers

import (
	"net/http"
	"testing"

	"students-api/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health/live", NewHealthHandler(nil).Live)

	recorder := h.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body HealthStatus
	testutils.ParseJSONResponse(t, recorder, &body)
	assert.Equal(t, HealthStatus{Status: "ok", Version: Version}, body)
}

func TestReadyWithoutDatabase(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health/ready", NewHealthHandler(nil).Ready)

	recorder := h.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var body HealthStatus
	testutils.ParseJSONResponse(t, recorder, &body)
	assert.Equal(t, "unavailable", body.Status)
	assert.Equal(t, errNoDatabase.Error(), body.Database)
}
