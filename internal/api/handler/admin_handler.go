package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/api/metrics"
	"github.com/corphq/api/internal/core/ports"
)

// AdminHandler serves the data-bootstrap endpoints.
type AdminHandler struct {
	bootstrap ports.BootstrapService
	regions   ports.RegionRepository
	log       zerolog.Logger
}

func NewAdminHandler(bootstrap ports.BootstrapService, regions ports.RegionRepository, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{bootstrap: bootstrap, regions: regions, log: log}
}

type configuredResponse struct {
	IsConfigured bool `json:"is_configured"`
}

type configureResponse struct {
	IsConfigured    bool `json:"is_configured"`
	RegionsImported int  `json:"regions_imported"`
}

// Configured reports whether the reference dataset has been populated.
//
// @Summary      Has the system been configured
// @Tags         admin
// @Produce      json
// @Success      200  {object}  configuredResponse
// @Router       /admin/configured [get]
func (h *AdminHandler) Configured(c echo.Context) error {
	populated, err := h.regions.HasAny(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, configuredResponse{IsConfigured: populated})
}

// Configure applies store indexes and runs the region import. The import is
// skipped when records already exist unless ?force=true is passed.
//
// @Summary      Configure the system for operation
// @Tags         admin
// @Produce      json
// @Success      200  {object}  configureResponse
// @Router       /admin/configure [post]
func (h *AdminHandler) Configure(c echo.Context) error {
	ctx := c.Request().Context()
	force := c.QueryParam("force") == "true"

	if err := h.bootstrap.ApplyIndexes(ctx); err != nil {
		return err
	}

	imported, err := h.bootstrap.PopulateRegions(ctx, force)
	if err != nil {
		return err
	}
	metrics.RegionsImportedTotal.Add(float64(imported))

	h.log.Info().Bool("force", force).Int("regions", imported).Msg("bootstrap configure complete")
	return c.JSON(http.StatusOK, configureResponse{IsConfigured: true, RegionsImported: imported})
}
