package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/report"
	"github.com/turbolytics/salesreport/internal/sales"
)

// Generator runs a single report generation.
type Generator interface {
	Generate(ctx context.Context, req report.Request) (*report.Result, error)
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxRows sets the row limit used when a request does not pass max_rows.
func WithMaxRows(n int) Option {
	return func(s *Server) {
		s.maxRows = n
	}
}

type Server struct {
	logger    *zap.Logger
	generator Generator
	maxRows   int
}

func New(generator Generator, opts ...Option) *Server {
	s := &Server{
		logger:    zap.NewNop(),
		generator: generator,
		maxRows:   100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Post("/{salesID}", s.generateReport)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("from", r.RemoteAddr),
				zap.String("protocol", r.Proto),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) generateReport(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := s.generator.Generate(r.Context(), req)
	switch {
	case errors.Is(err, sales.ErrNotFound):
		http.Error(w, "sales not found", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("generating report",
			zap.String("sales_id", req.SalesID),
			zap.Error(err),
		)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	case res == nil:
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(res.Catalog); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}

func (s *Server) parseRequest(r *http.Request) (report.Request, error) {
	req := report.Request{
		SalesID: chi.URLParam(r, "salesID"),
		MaxRows: s.maxRows,
	}

	q := r.URL.Query()
	var err error
	if v := q.Get("max_rows"); v != "" {
		if req.MaxRows, err = strconv.Atoi(v); err != nil {
			return req, errors.New("max_rows must be an integer")
		}
	}
	if v := q.Get("nat_trade"); v != "" {
		if req.IsNatTrade, err = strconv.ParseBool(v); err != nil {
			return req, errors.New("nat_trade must be a boolean")
		}
	}
	if v := q.Get("supervisor"); v != "" {
		if req.IsSupervisor, err = strconv.ParseBool(v); err != nil {
			return req, errors.New("supervisor must be a boolean")
		}
	}
	return req, nil
}
