// SPDX-License-Identifier: MIT
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/internal/logging"
	"github.com/katalvlaran/campusroute/route"
)

// User-facing messages.
const (
	msgInvalidLocation = "invalid location"
	msgNoPath          = "no path found"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

type step struct {
	ID   string   `json:"id"`
	Name string   `json:"name,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

type routeResponse struct {
	Algorithm      route.Algorithm `json:"algorithm"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	Found          bool            `json:"found"`
	Path           []step          `json:"path"`
	DistanceM      *float64        `json:"distance_m,omitempty"`
	Hops           int             `json:"hops"`
	WalkingMinutes *float64        `json:"walking_minutes,omitempty"`
	ElapsedMS      float64         `json:"elapsed_ms"`
}

type compareResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Routes []routeResponse `json:"routes"`
}

func (s *Server) health(c *gin.Context) {
	st := s.g.Stats()
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Vertices: st.Vertices, Edges: st.Edges})
}

func (s *Server) listLocations(c *gin.Context) {
	c.JSON(http.StatusOK, s.tbl.All())
}

func (s *Server) findRoute(c *gin.Context) {
	algo := s.algo
	if name := c.Query("algorithm"); name != "" {
		a, err := route.ParseAlgorithm(name)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err.Error())
			return
		}
		algo = a
	}
	from, to, ok := s.endpoints(c)
	if !ok {
		return
	}

	r, err := route.Find(c.Request.Context(), s.g, algo, from, to, s.routeOptions(c)...)
	if err != nil {
		s.engineError(c, err)
		return
	}
	if !r.Result.Found {
		s.fail(c, http.StatusNotFound, msgNoPath)
		return
	}
	c.JSON(http.StatusOK, s.render(r))
}

func (s *Server) compareRoutes(c *gin.Context) {
	from, to, ok := s.endpoints(c)
	if !ok {
		return
	}

	rs, err := route.Compare(c.Request.Context(), s.g, from, to, s.routeOptions(c)...)
	if err != nil {
		s.engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, compareResponse{
		From:   from,
		To:     to,
		Routes: lo.Map(rs, func(r route.Route, _ int) routeResponse { return s.render(r) }),
	})
}

// endpoints resolves the from and to query parameters against the table.
func (s *Server) endpoints(c *gin.Context) (string, string, bool) {
	from, okFrom := s.tbl.Resolve(c.Query("from"))
	to, okTo := s.tbl.Resolve(c.Query("to"))
	if !okFrom || !okTo {
		s.fail(c, http.StatusBadRequest, msgInvalidLocation)
		return "", "", false
	}

	return from, to, true
}

func (s *Server) routeOptions(c *gin.Context) []route.Option {
	lg := s.log.With(zap.String(ctxRequestID, c.GetString(ctxRequestID)))
	opts := []route.Option{
		route.WithLogger(logging.Logr(lg)),
		route.WithWalkingSpeed(s.speed),
	}
	if s.metrics != nil {
		opts = append(opts, route.WithObserver(s.metrics.ObserveRoute))
	}

	return opts
}

func (s *Server) engineError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrInvalidEndpoint) {
		s.fail(c, http.StatusBadRequest, msgInvalidLocation)
		return
	}
	s.log.Error("route query failed", zap.Error(err), zap.String(ctxRequestID, c.GetString(ctxRequestID)))
	s.fail(c, http.StatusInternalServerError, err.Error())
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, RequestID: c.GetString(ctxRequestID)})
}

func (s *Server) render(r route.Route) routeResponse {
	out := routeResponse{
		Algorithm: r.Algorithm,
		From:      r.From,
		To:        r.To,
		Found:     r.Result.Found,
		Path:      lo.Map(r.Result.Path, func(id string, _ int) step { return s.step(id) }),
		Hops:      r.Result.Hops(),
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
	}
	if d, ok := r.Result.Distance(); ok {
		out.DistanceM = lo.ToPtr(d)
	}
	if wt, ok := r.WalkingTime(); ok {
		out.WalkingMinutes = lo.ToPtr(wt.Minutes())
	}

	return out
}

func (s *Server) step(id string) step {
	st := step{ID: id}
	v, ok := s.g.Vertex(id)
	if !ok {
		return st
	}
	st.Name = v.Name
	if v.HasCoords {
		st.Lat, st.Lon = lo.ToPtr(v.Coords.Lat), lo.ToPtr(v.Coords.Lon)
	}

	return st
}
