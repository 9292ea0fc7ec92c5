package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type AuthSI interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

type EntrySI interface {
	Translate(ctx context.Context, text, direction string) (string, error)
	SaveEntry(ctx context.Context, entry models.NewEntry) (models.Entry, error)
	Entries(ctx context.Context, userID int64, offset, limit int) ([]models.EntryView, int, error)
	RandomEntry(ctx context.Context, userID int64) (models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
	Examples(ctx context.Context, userID, entryID int64) ([]models.Example, error)
	AddExample(ctx context.Context, userID, entryID int64, opts models.AddExampleOptions) (models.ExampleResult, error)
	DeleteExample(ctx context.Context, userID, entryID int64, index int) ([]models.Example, error)
}

type PracticeSI interface {
	BuildCloze(ctx context.Context, userID, entryID int64) (models.Cloze, error)
	NewFlashcards(ctx context.Context, userID, entryID int64) (models.Flashcards, error)
}

type ProgressSI interface {
	DailyProgress(ctx context.Context, userID int64, windowDays int) (models.DailyProgress, error)
	DefaultWindow() int
	RecordExercise(ctx context.Context, userID int64) error
}

type ServiceI interface {
	AuthSI
	EntrySI
	PracticeSI
	ProgressSI
}

type MetricsI interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
}

type Server struct {
	srv *http.Server
	log *zap.Logger
}

func NewServer(cfg config.HTTPConfig, env string, service ServiceI, metrics MetricsI, gatherer prometheus.Gatherer, log *zap.Logger) (*Server, error) {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.JWTSecret == "" {
		log.Warn("http.jwt_secret is empty, using a random secret for this process")
	}
	tokens, err := NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	router := NewRouter(NewHandler(service, tokens, log), tokens, metrics, gatherer, log)

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}, nil
}

// NewRouter wires the public and the token protected routes.
func NewRouter(h *Handler, tokens *TokenIssuer, metrics MetricsI, gatherer prometheus.Gatherer, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log), Metrics(metrics))

	r.GET("/healthz", HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/auth/status", h.AuthStatus)
	r.POST("/translate", h.Translate)

	protected := r.Group("/")
	protected.Use(RequireAuth(tokens))
	{
		protected.POST("/save", h.SaveEntry)
		protected.GET("/entries", h.Entries)
		protected.DELETE("/entries/:id", h.DeleteEntry)
		protected.GET("/entries/:id/examples", h.Examples)
		protected.POST("/entries/:id/example", h.AddExample)
		protected.DELETE("/entries/:id/examples/:index", h.DeleteExample)

		protected.POST("/practise/ai", h.Flashcards)
		protected.POST("/practise/cloze", h.Cloze)

		protected.GET("/progress/daily", h.DailyProgress)
		protected.POST("/progress/exercise", h.RecordExercise)
	}

	return r
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is done and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
