// Package httpapi exposes a running simulation over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"cellular/pkg/coord"
	"cellular/pkg/sims/life"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// maxRegionCells bounds the area a single region query may scan.
const maxRegionCells = 256 * 256

var (
	errInvalidRegion = errors.New("invalid region")
	errInvalidJSON   = errors.New("invalid json")
	errInvalidCell   = errors.New("invalid cell")
)

// Handler serves the simulation API.
type Handler struct {
	Engine *Engine
}

// RegisterRoutes mounts the API on s.
func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.GET("/api/sim", h.status)
	sim := s.Group("/api/sim")
	sim.POST("/start", h.start)
	sim.POST("/stop", h.stop)
	sim.POST("/step", h.step)
	sim.POST("/reset", h.reset)

	s.GET("/api/cells", h.region)
	s.POST("/api/cells", h.setCell)
}

type transitionResponse struct {
	Changed bool   `json:"changed"`
	Status  Status `json:"status"`
}

type resetRequest struct {
	Seed int64 `json:"seed"`
}

type cellRequest struct {
	X     *int  `json:"x"`
	Y     *int  `json:"y"`
	Alive *bool `json:"alive,omitempty"`
}

type cellResponse struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Alive bool `json:"alive"`
}

type regionResponse struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	W     int      `json:"w"`
	H     int      `json:"h"`
	Alive [][2]int `json:"alive"`
}

func (h Handler) status(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Engine.Status())
}

func (h Handler) start(_ context.Context, ctx *app.RequestContext) {
	changed, st := h.Engine.Start()
	ctx.JSON(consts.StatusOK, transitionResponse{Changed: changed, Status: st})
}

func (h Handler) stop(_ context.Context, ctx *app.RequestContext) {
	changed, st := h.Engine.Stop()
	ctx.JSON(consts.StatusOK, transitionResponse{Changed: changed, Status: st})
}

func (h Handler) step(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Engine.Step())
}

func (h Handler) reset(_ context.Context, ctx *app.RequestContext) {
	var body resetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, h.Engine.Reset(body.Seed))
}

func (h Handler) region(_ context.Context, ctx *app.RequestContext) {
	origin, w, height, err := parseRegion(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp := regionResponse{X: origin.X, Y: origin.Y, W: w, H: height, Alive: [][2]int{}}
	for _, c := range h.Engine.Region(origin, w, height) {
		resp.Alive = append(resp.Alive, [2]int{c.X, c.Y})
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) setCell(_ context.Context, ctx *app.RequestContext) {
	var body cellRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeError(ctx, err)
		return
	}
	if body.X == nil || body.Y == nil {
		writeError(ctx, fmt.Errorf("%w: x and y are required", errInvalidJSON))
		return
	}
	c := coord.New(*body.X, *body.Y)
	if !life.InDomain(c) {
		writeError(ctx, fmt.Errorf("%w: %v outside [%d, %d]", errInvalidCell, c, life.MinCell, life.MaxCell))
		return
	}
	alive := h.Engine.SetCell(c, body.Alive)
	ctx.JSON(consts.StatusOK, cellResponse{X: c.X, Y: c.Y, Alive: alive})
}

func parseRegion(ctx *app.RequestContext) (coord.Vec, int, int, error) {
	var vals [4]int
	for i, key := range [4]string{"x", "y", "w", "h"} {
		raw := string(ctx.Query(key))
		if raw == "" {
			return coord.Vec{}, 0, 0, fmt.Errorf("%w: missing %s", errInvalidRegion, key)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return coord.Vec{}, 0, 0, fmt.Errorf("%w: %s=%q", errInvalidRegion, key, raw)
		}
		vals[i] = n
	}
	w, h := vals[2], vals[3]
	if w <= 0 || h <= 0 || w > maxRegionCells || h > maxRegionCells || w*h > maxRegionCells {
		return coord.Vec{}, 0, 0, fmt.Errorf("%w: %dx%d exceeds %d cells", errInvalidRegion, w, h, maxRegionCells)
	}
	// w and h are already small, so the far corner cannot overflow once the
	// origin is known to be in range.
	origin := coord.New(vals[0], vals[1])
	if !life.InDomain(origin) || !life.InDomain(origin.Add(coord.New(w-1, h-1))) {
		return coord.Vec{}, 0, 0, fmt.Errorf("%w: %dx%d at %v leaves [%d, %d]", errInvalidRegion, w, h, origin, life.MinCell, life.MaxCell)
	}
	return origin, w, h, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, errInvalidRegion):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_region", err.Error())
	case errors.Is(err, errInvalidCell):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_cell", err.Error())
	case errors.Is(err, errInvalidJSON):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
