package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scout-research/scout/pkg/models"
)

// maxStrategyBody bounds uploaded strategy documents.
const maxStrategyBody = 1 << 20 // 1 MiB

// bindStrategy reads and parses the request body as a strategy document.
// YAML is a superset of JSON, so both content types go through one parser.
func bindStrategy(c *echo.Context) (*models.Strategy, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxStrategyBody))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	st, err := models.ParseStrategyYAML(body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return st, nil
}

// listStrategiesHandler handles GET /api/strategies. Inactive strategies are
// included; selection filters on activity, administration sees everything.
func (s *Server) listStrategiesHandler(c *echo.Context) error {
	strategies, err := s.strategies.List(c.Request().Context(), false)
	if err != nil {
		return mapStrategyError(err)
	}
	return c.JSON(http.StatusOK, strategies)
}

// getStrategyHandler handles GET /api/strategies/:slug.
func (s *Server) getStrategyHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy slug is required")
	}

	st, err := s.strategies.Get(c.Request().Context(), slug)
	if err != nil {
		return mapStrategyError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// createStrategyHandler handles POST /api/strategies/:slug.
func (s *Server) createStrategyHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy slug is required")
	}

	st, err := bindStrategy(c)
	if err != nil {
		return err
	}
	if st.Meta.Slug != slug {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy slug does not match URL")
	}

	if err := s.strategies.Create(c.Request().Context(), st); err != nil {
		return mapStrategyError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

// updateStrategyHandler handles PUT /api/strategies/:slug.
func (s *Server) updateStrategyHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy slug is required")
	}

	st, err := bindStrategy(c)
	if err != nil {
		return err
	}

	if err := s.strategies.Update(c.Request().Context(), slug, st); err != nil {
		return mapStrategyError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// deleteStrategyHandler handles DELETE /api/strategies/:slug.
func (s *Server) deleteStrategyHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy slug is required")
	}

	if err := s.strategies.Delete(c.Request().Context(), slug); err != nil {
		return mapStrategyError(err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
