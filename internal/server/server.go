// Package server exposes the graph queries as a JSON API over gin.
//
// Endpoints:
//
//	POST /api/route     — shortest path between two points
//	POST /api/nearest   — closest graph vertex to a query point
//	POST /api/connected — reachability between two points
//	POST /api/distance  — pairwise mile sum along a point sequence
//	GET  /healthz       — liveness
//
// The server owns no graph logic: it binds JSON, calls the library
// packages, and maps their sentinel errors onto HTTP statuses
// (400 malformed body, 404 no route, 422 empty graph).
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/geograph/connectivity"
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/internal/metrics"
	"github.com/katalvlaran/geograph/nearest"
)

// Server serves graph queries over an immutable, fully built core.Graph.
type Server struct {
	log     *slog.Logger
	graph   *core.Graph
	metrics *metrics.Metrics
}

// New returns a Server bound to an already constructed graph. The graph
// must be fully built before New is called; the server only reads it.
func New(log *slog.Logger, graph *core.Graph, m *metrics.Metrics) *Server {
	return &Server{log: log, graph: graph, metrics: m}
}

// Router assembles the gin engine with CORS and all query routes.
func (s *Server) Router(allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group("/api")
	api.POST("/route", s.handleRoute)
	api.POST("/nearest", s.handleNearest)
	api.POST("/connected", s.handleConnected)
	api.POST("/distance", s.handleDistance)

	return router
}

// pointDTO is the wire form of a core.Point.
type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p pointDTO) point() core.Point { return core.Point{Lat: p.Lat, Lon: p.Lon} }

func toDTO(p core.Point) pointDTO { return pointDTO{Lat: p.Lat, Lon: p.Lon} }

type routeRequest struct {
	Start pointDTO `json:"start"`
	End   pointDTO `json:"end"`
}

type routeResponse struct {
	Path          []pointDTO `json:"path"`
	DistanceMiles float64    `json:"distanceMiles"`
}

type nearestRequest struct {
	Point pointDTO `json:"point"`
}

type nearestResponse struct {
	Nearest       pointDTO `json:"nearest"`
	DistanceMiles float64  `json:"distanceMiles"`
}

type connectedRequest struct {
	A pointDTO `json:"a"`
	B pointDTO `json:"b"`
}

type connectedResponse struct {
	Connected bool `json:"connected"`
}

type distanceRequest struct {
	Points []pointDTO `json:"points"`
}

type distanceResponse struct {
	DistanceMiles float64 `json:"distanceMiles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoute(c *gin.Context) {
	done := s.observe("route")

	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done("error")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	path, miles, err := dijkstra.Route(s.graph, req.Start.point(), req.End.point())
	if err != nil {
		done("error")
		if errors.Is(err, dijkstra.ErrNoRoute) {
			// Covers unroutable endpoints, self-routes and disconnection.
			c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		s.log.Error("route query failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	resp := routeResponse{Path: make([]pointDTO, len(path)), DistanceMiles: miles}
	for i, p := range path {
		resp.Path[i] = toDTO(p)
	}
	done("ok")
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleNearest(c *gin.Context) {
	done := s.observe("nearest")

	var req nearestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done("error")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	query := req.Point.point()
	found, err := nearest.Nearest(s.graph, query)
	if err != nil {
		done("error")
		if errors.Is(err, nearest.ErrEmptyGraph) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		s.log.Error("nearest query failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	done("ok")
	c.JSON(http.StatusOK, nearestResponse{
		Nearest:       toDTO(found),
		DistanceMiles: query.DistanceTo(found),
	})
}

func (s *Server) handleConnected(c *gin.Context) {
	done := s.observe("connected")

	var req connectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done("error")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ok, err := connectivity.Connected(s.graph, req.A.point(), req.B.point())
	if err != nil {
		done("error")
		s.log.Error("connected query failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	done("ok")
	c.JSON(http.StatusOK, connectedResponse{Connected: ok})
}

func (s *Server) handleDistance(c *gin.Context) {
	done := s.observe("distance")

	var req distanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		done("error")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	points := make([]core.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = p.point()
	}

	done("ok")
	c.JSON(http.StatusOK, distanceResponse{DistanceMiles: core.RouteDistance(points)})
}

// observe starts a latency timer for kind and returns a closure recording
// the final status. Metrics are optional so the server stays testable bare.
func (s *Server) observe(kind string) func(status string) {
	if s.metrics == nil {
		return func(string) {}
	}

	start := time.Now()

	return func(status string) {
		s.metrics.QueriesTotal.WithLabelValues(kind, status).Inc()
		s.metrics.QuerySeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}
