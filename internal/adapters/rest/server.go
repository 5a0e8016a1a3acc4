// Package rest exposes a Gateway as a PostgREST-style JSON service and
// provides the matching HTTP client Gateway.
package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/gridboard/internal/ctxutil"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// Header names understood by the data service.
const (
	HeaderAPIKey        = "apikey"
	HeaderActor         = "X-Actor-Id"
	HeaderCorrelationID = "X-Correlation-Id"
)

// APIPrefix is the path prefix for collection routes.
const APIPrefix = "/rest/v1"

// ErrorBody is the JSON body returned for every failed request.
type ErrorBody struct {
	Message string              `json:"message"`
	Kind    secondary.ErrorKind `json:"kind"`
}

// Server serves a Gateway over HTTP.
type Server struct {
	gateway secondary.Gateway
	apiKey  string
	logger  logrus.FieldLogger
	extra   map[string]http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithHandler mounts an additional unauthenticated handler, such as /metrics.
func WithHandler(path string, h http.Handler) ServerOption {
	return func(s *Server) {
		s.extra[path] = h
	}
}

// NewServer creates a data-service server. Requests to collection routes
// must present apiKey in the apikey header or as a bearer token.
func NewServer(gateway secondary.Gateway, apiKey string, logger logrus.FieldLogger, opts ...ServerOption) *Server {
	s := &Server{
		gateway: gateway,
		apiKey:  apiKey,
		logger:  logger,
		extra:   make(map[string]http.Handler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(correlationID())
	r.Use(requestLogger(s.logger))
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for path, h := range s.extra {
		r.GET(path, gin.WrapH(h))
	}

	api := r.Group(APIPrefix, s.requireAPIKey())
	api.GET("/:collection", s.list)
	api.POST("/:collection", s.insert)
	api.PATCH("/:collection/:id", s.update)
	api.PUT("/:collection/:id", s.upsert)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorBody{Message: "route not found", Kind: secondary.ErrNotFound})
	})
	return r
}

func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		ctx := ctxutil.WithCorrelationID(c.Request.Context(), cid)
		if actor := c.GetHeader(HeaderActor); actor != "" {
			ctx = ctxutil.WithActorID(ctx, actor)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderCorrelationID, cid)
		c.Next()
	}
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ctx := c.Request.Context()
		logger.WithFields(logrus.Fields{
			"status":         c.Writer.Status(),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"latency":        time.Since(start).String(),
			"correlation_id": ctxutil.CorrelationFromContext(ctx),
			"actor":          ctxutil.ActorFromContext(ctx),
		}).Info("request")
	}
}

func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			auth := strings.TrimSpace(c.GetHeader("Authorization"))
			if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
				key = strings.TrimSpace(auth[7:])
			}
		}
		if s.apiKey == "" || key != s.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{
				Message: "Invalid API key",
				Kind:    secondary.ErrAuthorization,
			})
			return
		}
		c.Next()
	}
}

func (s *Server) list(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		items any
		err   error
	)
	switch secondary.Collection(c.Param("collection")) {
	case secondary.CollectionEmployees:
		items, err = nonNil(s.gateway.FetchEmployees(ctx))
	case secondary.CollectionWorkOrders:
		items, err = nonNil(s.gateway.FetchWorkOrders(ctx))
	case secondary.CollectionGridSections:
		items, err = nonNil(s.gateway.FetchGridSections(ctx))
	case secondary.CollectionIncidents:
		items, err = nonNil(s.gateway.FetchIncidents(ctx))
	case secondary.CollectionSchedules:
		items, err = nonNil(s.gateway.FetchSchedules(ctx))
	default:
		s.fail(c, unknownCollection(c.Param("collection")))
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) insert(c *gin.Context) {
	coll := secondary.Collection(c.Param("collection"))
	var m secondary.Mutation
	switch coll {
	case secondary.CollectionWorkOrders:
		var draft models.WorkOrderDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			s.fail(c, badBody(err))
			return
		}
		m = secondary.InsertWorkOrder(draft)
	case secondary.CollectionIncidents:
		var draft models.IncidentDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			s.fail(c, badBody(err))
			return
		}
		m = secondary.InsertIncident(draft)
	default:
		m = secondary.Mutation{Collection: coll, Op: secondary.OpInsert}
	}
	s.apply(c, m, http.StatusCreated)
}

func (s *Server) update(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.fail(c, badBody(err))
		return
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		s.fail(c, badBody(err))
		return
	}

	m := secondary.Mutation{
		Collection: secondary.Collection(c.Param("collection")),
		Op:         secondary.OpUpdate,
		ID:         c.Param("id"),
		Fields:     fields,
	}
	s.apply(c, m, http.StatusNoContent)
}

func (s *Server) upsert(c *gin.Context) {
	coll := secondary.Collection(c.Param("collection"))
	if coll != secondary.CollectionSchedules {
		s.apply(c, secondary.Mutation{Collection: coll, Op: secondary.OpUpsert, ID: c.Param("id")}, http.StatusOK)
		return
	}

	var sched models.Schedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		s.fail(c, badBody(err))
		return
	}
	if sched.ID == "" {
		sched.ID = c.Param("id")
	}
	if sched.ID != c.Param("id") {
		s.fail(c, secondary.NewGatewayError(secondary.ErrValidation, nil, "schedule ID %q does not match path %q", sched.ID, c.Param("id")))
		return
	}
	s.apply(c, secondary.UpsertSchedule(sched), http.StatusOK)
}

func (s *Server) apply(c *gin.Context, m secondary.Mutation, okStatus int) {
	if !m.Collection.IsKnown() {
		s.fail(c, unknownCollection(string(m.Collection)))
		return
	}
	if err := s.gateway.Mutate(c.Request.Context(), m); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(okStatus)
}

func (s *Server) fail(c *gin.Context, err error) {
	gwErr := secondary.AsGatewayError(err)
	status := StatusForKind(gwErr.Kind)
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("data service request failed")
	}
	c.AbortWithStatusJSON(status, ErrorBody{Message: gwErr.Message, Kind: gwErr.Kind})
}

// StatusForKind maps an error kind to the HTTP status the server responds with.
func StatusForKind(kind secondary.ErrorKind) int {
	switch kind {
	case secondary.ErrValidation:
		return http.StatusBadRequest
	case secondary.ErrNotFound:
		return http.StatusNotFound
	case secondary.ErrAuthorization:
		return http.StatusForbidden
	case secondary.ErrMalformed:
		return http.StatusBadGateway
	}
	return http.StatusServiceUnavailable
}

func unknownCollection(name string) error {
	return secondary.NewGatewayError(secondary.ErrNotFound, nil, "unknown collection %q", name)
}

func badBody(err error) error {
	return secondary.NewGatewayError(secondary.ErrValidation, err, "invalid request body: %v", err)
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T, err error) ([]T, error) {
	if items == nil && err == nil {
		items = []T{}
	}
	return items, err
}
