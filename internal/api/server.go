package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/username/overtime-suite/internal/calendar"
	"github.com/username/overtime-suite/internal/config"
	"github.com/username/overtime-suite/internal/input"
	"github.com/username/overtime-suite/internal/overtime"
	"github.com/username/overtime-suite/internal/report"
	"go.uber.org/zap"
)

// Server exposes the calculators over HTTP
type Server struct {
	cfg      *config.Config
	calendar calendar.Calendar
	logger   *zap.Logger
	router   *gin.Engine
}

// NewServer creates a new Server with routes registered
func NewServer(cfg *config.Config, cal calendar.Calendar, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		calendar: cal,
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimit(newLimiterStore(cfg.Server.RatePerMinute, cfg.Server.Burst), logger))
	{
		api.GET("/defaults", s.Defaults)
		api.GET("/weekends", s.Weekends)
		api.GET("/day", s.Day)
		api.POST("/regular", s.Regular)
		api.POST("/ramadan", s.Ramadan)
		api.POST("/mixed", s.Mixed)
	}

	s.router = r
	return s
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Defaults returns the configured starting values of every form
func (s *Server) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regular": s.cfg.Regular,
		"ramadan": s.cfg.Ramadan,
		"mixed":   s.cfg.Mixed,
	})
}

// Weekends returns the calendar composition of a month
func (s *Server) Weekends(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}

	info, err := s.calendar.GetMonthInfo(year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":          info.Year,
		"month":         int(info.Month),
		"days_in_month": info.DaysInMonth,
		"weekend_count": info.WeekendCount,
	})
}

// Day classifies a single date as workday or weekend
func (s *Server) Day(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	day, err := s.calendar.GetDayInfo(date)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       day.Date.Format("2006-01-02"),
		"type":       day.Type.String(),
		"is_workday": day.IsWorkday,
	})
}

// Regular computes a regular-month result. Fields missing from the body
// keep their configured defaults.
func (s *Server) Regular(c *gin.Context) {
	params := s.cfg.Regular
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.ValidateRegular(params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := input.SyncWeekendDays(s.calendar, &params, s.logger); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	res := overtime.ComputeRegular(params)
	s.logResult("regular", res.Assessment)
	s.respond(c, params, res)
}

// Ramadan computes a Ramadan-only result
func (s *Server) Ramadan(c *gin.Context) {
	params := s.cfg.Ramadan
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := overtime.ComputeRamadan(params)
	s.logResult("ramadan", res.Assessment)
	s.respond(c, params, res)
}

// Mixed computes a mixed-period result
func (s *Server) Mixed(c *gin.Context) {
	params := s.cfg.Mixed
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := overtime.ComputeMixed(params)
	s.logResult("mixed", res.Assessment)
	s.respond(c, params, res)
}

// respond writes params and result, or 422 when the result overflowed and
// cannot be encoded as JSON.
func (s *Server) respond(c *gin.Context, params any, res interface{ Finite() bool }) {
	if !res.Finite() {
		s.logger.Warn("Result overflowed", zap.String("path", c.FullPath()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": report.ErrNonFinite.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"params": params, "result": res})
}

func (s *Server) logResult(regime string, a overtime.Assessment) {
	s.logger.Debug("Overtime computed",
		zap.String("regime", regime),
		zap.Float64("overtime", a.Overtime),
		zap.Float64("load_ratio", a.LoadRatio),
		zap.String("descriptor", string(a.Descriptor)))
}
