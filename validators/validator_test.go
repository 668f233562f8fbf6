package validators

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minerahub/dashboard/backend/internal/models"
)

func TestValidate_CreateReport(t *testing.T) {
	v := NewValidator()

	loc := models.Location{Lat: -19.9, Lng: -43.9}
	ok := models.CreateReportRequest{Type: models.ReportDust, Description: "Poeira", Location: &loc}
	assert.NoError(t, v.Validate(&ok))

	bad := models.CreateReportRequest{Type: "smell"}
	err := v.Validate(&bad)
	require.Error(t, err)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
	fields := he.Message.(echo.Map)["fields"].(map[string]string)
	assert.Contains(t, fields["type"], "must be one of")
	assert.Equal(t, "is required", fields["description"])
	assert.Equal(t, "is required", fields["location"])
}

func TestValidate_LocationRange(t *testing.T) {
	v := NewValidator()
	loc := models.Location{Lat: 120, Lng: 0}
	req := models.CreateReportRequest{Type: models.ReportRisk, Description: "x", Location: &loc}
	assert.Error(t, v.Validate(&req))
}

func TestValidate_SendMessageToSelf(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&models.SendMessageRequest{FromUserID: 1, ToUserID: 1, Content: "oi"})
	require.Error(t, err)
	assert.NoError(t, v.Validate(&models.SendMessageRequest{FromUserID: 1, ToUserID: 2, Content: "oi"}))
}
