// Package v1 exposes the loadout service and the data registry over HTTP.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/registry"
	"github.com/spiritwiki/loadout-api/internal/services/loadout"
)

// Config holds the dependencies for the API handler
type Config struct {
	LoadoutService loadout.Service
	Registry       *registry.Registry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.LoadoutService == nil {
		vb.RequiredField("LoadoutService")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	return vb.Build()
}

// Handler serves the v1 API
type Handler struct {
	service  loadout.Service
	registry *registry.Registry
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{
		service:  cfg.LoadoutService,
		registry: cfg.Registry,
	}, nil
}

// Register mounts the v1 routes on an echo instance
func (h *Handler) Register(e *echo.Echo) {
	v1 := e.Group("/v1")

	v1.POST("/loadouts", h.SaveLoadout)
	v1.GET("/loadouts", h.ListLoadouts)
	v1.GET("/loadouts/:identifier", h.ResolveLoadout)
	v1.DELETE("/loadouts/:id", h.DeleteLoadout)
	v1.POST("/loadouts/:id/share", h.ShareLoadout)

	v1.POST("/builds/skill", h.SaveSkillBuild)
	v1.GET("/builds/skill", h.ListSkillBuilds)
	v1.GET("/builds/skill/:id", h.GetSkillBuild)
	v1.DELETE("/builds/skill/:id", h.DeleteSkillBuild)

	v1.POST("/builds/spirit", h.SaveSpiritBuild)
	v1.GET("/builds/spirit", h.ListSpiritBuilds)
	v1.GET("/builds/spirit/:id", h.GetSpiritBuild)
	v1.DELETE("/builds/spirit/:id", h.DeleteSpiritBuild)

	v1.POST("/collection", h.UpsertMySpirit)
	v1.GET("/collection", h.ListMySpirits)
	v1.DELETE("/collection/:id", h.DeleteMySpirit)

	v1.GET("/registry/sources", h.ListSources)
	v1.GET("/registry/:source/items", h.SearchItems)
	v1.GET("/registry/:source/items/:id", h.GetItem)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps service errors to HTTP statuses through the error code
func respondError(c echo.Context, err error) error {
	code := errors.GetCode(err)
	return c.JSON(code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}

// Loadout endpoints

type saveLoadoutRequest struct {
	OwnerID string        `json:"ownerId"`
	Loadout *game.Loadout `json:"loadout"`
}

// SaveLoadout handles POST /v1/loadouts
func (h *Handler) SaveLoadout(c echo.Context) error {
	var req saveLoadoutRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.InvalidArgument("request body is not valid JSON"))
	}

	output, err := h.service.SaveLoadout(c.Request().Context(), &loadout.SaveLoadoutInput{
		OwnerID: req.OwnerID,
		Loadout: req.Loadout,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Loadout)
}

// ListLoadouts handles GET /v1/loadouts?owner_id=
func (h *Handler) ListLoadouts(c echo.Context) error {
	output, err := h.service.ListLoadouts(c.Request().Context(), &loadout.ListLoadoutsInput{
		OwnerID: c.QueryParam("owner_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Loadouts)
}

// ResolveLoadout handles GET /v1/loadouts/:identifier, where identifier is
// a persisted loadout ID or an encoded share payload
func (h *Handler) ResolveLoadout(c echo.Context) error {
	output, err := h.service.ResolveLoadout(c.Request().Context(), &loadout.ResolveLoadoutInput{
		Identifier: c.Param("identifier"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Loadout)
}

// DeleteLoadout handles DELETE /v1/loadouts/:id
func (h *Handler) DeleteLoadout(c echo.Context) error {
	output, err := h.service.DeleteLoadout(c.Request().Context(), &loadout.DeleteLoadoutInput{
		LoadoutID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": output.Message})
}

// ShareLoadout handles POST /v1/loadouts/:id/share
func (h *Handler) ShareLoadout(c echo.Context) error {
	output, err := h.service.ShareLoadout(c.Request().Context(), &loadout.ShareLoadoutInput{
		LoadoutID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"payload": output.Payload,
		"url":     output.URL,
	})
}

// Skill build endpoints

type saveSkillBuildRequest struct {
	OwnerID string           `json:"ownerId"`
	Build   *game.SkillBuild `json:"build"`
}

// SaveSkillBuild handles POST /v1/builds/skill
func (h *Handler) SaveSkillBuild(c echo.Context) error {
	var req saveSkillBuildRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.InvalidArgument("request body is not valid JSON"))
	}

	output, err := h.service.SaveSkillBuild(c.Request().Context(), &loadout.SaveSkillBuildInput{
		OwnerID: req.OwnerID,
		Build:   req.Build,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Build)
}

// ListSkillBuilds handles GET /v1/builds/skill?owner_id=
func (h *Handler) ListSkillBuilds(c echo.Context) error {
	output, err := h.service.ListSkillBuilds(c.Request().Context(), &loadout.ListSkillBuildsInput{
		OwnerID: c.QueryParam("owner_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Builds)
}

// GetSkillBuild handles GET /v1/builds/skill/:id
func (h *Handler) GetSkillBuild(c echo.Context) error {
	output, err := h.service.GetSkillBuild(c.Request().Context(), &loadout.GetSkillBuildInput{
		BuildID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Build)
}

// DeleteSkillBuild handles DELETE /v1/builds/skill/:id
func (h *Handler) DeleteSkillBuild(c echo.Context) error {
	output, err := h.service.DeleteSkillBuild(c.Request().Context(), &loadout.DeleteSkillBuildInput{
		BuildID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": output.Message})
}

// Spirit build endpoints

type saveSpiritBuildRequest struct {
	OwnerID string            `json:"ownerId"`
	Build   *game.SpiritBuild `json:"build"`
}

// SaveSpiritBuild handles POST /v1/builds/spirit
func (h *Handler) SaveSpiritBuild(c echo.Context) error {
	var req saveSpiritBuildRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.InvalidArgument("request body is not valid JSON"))
	}

	output, err := h.service.SaveSpiritBuild(c.Request().Context(), &loadout.SaveSpiritBuildInput{
		OwnerID: req.OwnerID,
		Build:   req.Build,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Build)
}

// ListSpiritBuilds handles GET /v1/builds/spirit?owner_id=
func (h *Handler) ListSpiritBuilds(c echo.Context) error {
	output, err := h.service.ListSpiritBuilds(c.Request().Context(), &loadout.ListSpiritBuildsInput{
		OwnerID: c.QueryParam("owner_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Builds)
}

// GetSpiritBuild handles GET /v1/builds/spirit/:id
func (h *Handler) GetSpiritBuild(c echo.Context) error {
	output, err := h.service.GetSpiritBuild(c.Request().Context(), &loadout.GetSpiritBuildInput{
		BuildID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Build)
}

// DeleteSpiritBuild handles DELETE /v1/builds/spirit/:id
func (h *Handler) DeleteSpiritBuild(c echo.Context) error {
	output, err := h.service.DeleteSpiritBuild(c.Request().Context(), &loadout.DeleteSpiritBuildInput{
		BuildID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": output.Message})
}

// Collection endpoints

type upsertMySpiritRequest struct {
	OwnerID string                 `json:"ownerId"`
	Spirit  *game.CollectionSpirit `json:"spirit"`
}

// UpsertMySpirit handles POST /v1/collection
func (h *Handler) UpsertMySpirit(c echo.Context) error {
	var req upsertMySpiritRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.InvalidArgument("request body is not valid JSON"))
	}

	output, err := h.service.UpsertMySpirit(c.Request().Context(), &loadout.UpsertMySpiritInput{
		OwnerID: req.OwnerID,
		Spirit:  req.Spirit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Spirit)
}

// ListMySpirits handles GET /v1/collection?owner_id=
func (h *Handler) ListMySpirits(c echo.Context) error {
	output, err := h.service.ListMySpirits(c.Request().Context(), &loadout.ListMySpiritsInput{
		OwnerID: c.QueryParam("owner_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, output.Spirits)
}

// DeleteMySpirit handles DELETE /v1/collection/:id
func (h *Handler) DeleteMySpirit(c echo.Context) error {
	output, err := h.service.DeleteMySpirit(c.Request().Context(), &loadout.DeleteMySpiritInput{
		MySpiritID: c.Param("id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": output.Message})
}

// Registry endpoints

// ListSources handles GET /v1/registry/sources
func (h *Handler) ListSources(c echo.Context) error {
	return c.JSON(http.StatusOK, h.registry.Sources())
}

// SearchItems handles GET /v1/registry/:source/items?q=. An absent query
// returns the full normalized source.
func (h *Handler) SearchItems(c echo.Context) error {
	source := c.Param("source")
	query := c.QueryParam("q")

	var (
		records []registry.Record
		err     error
	)
	if query == "" {
		records, err = h.registry.FetchData(c.Request().Context(), source)
	} else {
		records, err = h.registry.SearchItems(c.Request().Context(), source, query)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

type itemResponse struct {
	Item    registry.Record       `json:"item"`
	Display *registry.DisplayInfo `json:"display"`
}

// GetItem handles GET /v1/registry/:source/items/:id
func (h *Handler) GetItem(c echo.Context) error {
	source := c.Param("source")

	item, err := h.registry.FindItem(c.Request().Context(), source, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	display, err := h.registry.GetDisplayInfo(source, item)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, itemResponse{Item: item, Display: display})
}
