package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	money "github.com/rezonia/qreet/internal/decimal"
	"github.com/rezonia/qreet/internal/logger"
	"github.com/rezonia/qreet/internal/model"
	"github.com/rezonia/qreet/internal/receipt"
	"github.com/rezonia/qreet/internal/render"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Config holds server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
	QRSize       int
	QRLevel      render.Level
	Location     *time.Location // zone for sale times sent without one
	Logger       *logger.Logger
}

// Server represents the HTTP API server.
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *render.Renderer
	log      *logger.Logger
}

// NewServer creates a new API server.
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log := config.Logger
	if log == nil {
		log = logger.Nop()
	}

	var renderOpts []render.Option
	if config.QRSize > 0 {
		renderOpts = append(renderOpts, render.WithSize(config.QRSize))
	}
	if config.QRLevel != "" {
		renderOpts = append(renderOpts, render.WithLevel(config.QRLevel))
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(log))

	s := &Server{
		config:   config,
		router:   router,
		renderer: render.NewRenderer(renderOpts...),
		log:      log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/encode", s.handleEncode)
		v1.POST("/decode", s.handleDecode)
		v1.GET("/qr/:code", s.handleQR)
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", s.config.Address).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info().Msg("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Handler returns the http.Handler for use with custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEncode(c *gin.Context) {
	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	if (req.Fik == "") == (req.Bkp == "") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "exactly one of fik or bkp is required"})
		return
	}

	ts, err := receipt.ParseSaleTime(req.Time, s.config.Location)
	if err != nil {
		s.codecError(c, err)
		return
	}

	var r *receipt.Receipt
	if req.Fik != "" {
		r, err = receipt.OfFik(req.Fik, req.TaxID, req.Amount, ts, req.Mode)
	} else {
		r, err = receipt.OfBkp(req.Bkp, req.TaxID, req.Amount, ts, req.Mode)
	}
	if err != nil {
		s.codecError(c, err)
		return
	}

	code, err := r.Encode()
	if err != nil {
		s.codecError(c, err)
		return
	}

	c.JSON(http.StatusOK, EncodeResponse{
		Code:    code,
		Version: r.Version().String(),
	})
}

func (s *Server) handleDecode(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	r, err := receipt.Decode(strings.TrimSpace(req.Code))
	if err != nil {
		s.codecError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReceiptResponse(r))
}

func (s *Server) handleQR(c *gin.Context) {
	code := c.Param("code")

	size := s.renderer.Size()
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < render.MinSize || n > render.MaxSize {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "size must be a number between " + strconv.Itoa(render.MinSize) + " and " + strconv.Itoa(render.MaxSize),
			})
			return
		}
		size = n
	}

	if _, err := receipt.Decode(code); err != nil {
		s.codecError(c, err)
		return
	}

	data, err := s.renderer.PNGSize(code, size)
	if err != nil {
		s.log.Error().Err(err).Str("code", code).Msg("render failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

func (s *Server) codecError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error: err.Error(),
		Kind:  model.KindName(err),
	})
}

// NewReceiptResponse builds the JSON view of a receipt.
func NewReceiptResponse(r *receipt.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Code:        r.String(),
		Version:     r.Version().String(),
		Kind:        r.Proof().Kind().String(),
		Proof:       r.Proof().Hex(),
		ProofDigits: r.Proof().QRValue(),
		TaxID:       r.TaxID().String(),
		Mode:        r.Mode(),
		Time:        r.Timestamp().Format("2006-01-02 15:04"),
		Amount:      money.Format(r.Amount()),
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
