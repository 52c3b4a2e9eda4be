package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listSettingsHandler handles GET /api/settings.
func (s *Server) listSettingsHandler(c *echo.Context) error {
	settings, err := s.settings.ListSettings(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// getSettingHandler handles GET /api/settings/:key.
func (s *Server) getSettingHandler(c *echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "setting key is required")
	}

	setting, err := s.settings.GetSetting(c.Request().Context(), key)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, setting)
}

// putSettingHandler handles PUT /api/settings/:key. The body is the raw JSON
// value; consumers interpret the shape themselves.
func (s *Server) putSettingHandler(c *echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "setting key is required")
	}

	var value map[string]interface{}
	if err := c.Bind(&value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	setting, err := s.settings.PutSetting(c.Request().Context(), key, value)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, setting)
}
