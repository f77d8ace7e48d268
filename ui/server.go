package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"statviz/app"
	"statviz/domain/demo"
	"statviz/internal"
	"statviz/internal/config"
)

// Server is the gin-backed demo server. It owns no numeric state: every
// handler decodes parameters, calls a service, and encodes the immutable
// result. Rendering stays with the charting client.
type Server struct {
	router *gin.Engine
	engine *app.Engine
	cfg    *config.Config
	logger *internal.Logger
}

// NewServer creates the demo server.
func NewServer(engine *app.Engine, cfg *config.Config, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router: gin.Default(),
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.GET("/panels", s.handlePanels)
		api.POST("/classifier", s.handleClassifier)
		api.POST("/confusion", s.handleConfusion)
		api.POST("/confusion/adjust", s.handleConfusionAdjust)
		api.POST("/spectrum", s.handleSpectrum)

		api.GET("/regression", s.handleRegression)
		api.POST("/regression/points", s.handleAddPoint)
		api.PUT("/regression/points/:index", s.handleMovePoint)
		api.DELETE("/regression/points/:index", s.handleRemovePoint)
		api.PUT("/regression/viewport", s.handleViewport)
	}
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.logger.Info("demo server listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Debug("request failed: %v", err)
	c.JSON(statusForError(err), newErrorBody(err))
}

func (s *Server) handlePanels(c *gin.Context) {
	panels, err := s.engine.RefreshAll(c.Request.Context(), s.cfg.Demo)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, panels)
}

func (s *Server) handleClassifier(c *gin.Context) {
	var req app.ClassifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Classifier.Run(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleConfusion(c *gin.Context) {
	var req app.ConfusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Confusion.Run(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleConfusionAdjust(c *gin.Context) {
	var req app.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	counts, err := s.engine.Confusion.Adjust(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) handleSpectrum(c *gin.Context) {
	var req app.SpectrumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Spectrum.Run(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) degreeParam(c *gin.Context) int {
	degree, err := strconv.Atoi(c.DefaultQuery("degree", "2"))
	if err != nil {
		return 2
	}
	return degree
}

func (s *Server) handleRegression(c *gin.Context) {
	res, err := s.engine.Regression.Recompute(c.Request.Context(), s.degreeParam(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleAddPoint(c *gin.Context) {
	var p demo.Point
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Regression.AddPoint(c.Request.Context(), p, s.degreeParam(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleMovePoint(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: "index must be an integer"})
		return
	}
	var p demo.Point
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Regression.MovePoint(c.Request.Context(), index, p, s.degreeParam(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleRemovePoint(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: "index must be an integer"})
		return
	}
	res, err := s.engine.Regression.RemovePoint(c.Request.Context(), index, s.degreeParam(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleViewport(c *gin.Context) {
	var v demo.Viewport
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}
	res, err := s.engine.Regression.SetViewport(c.Request.Context(), v, s.degreeParam(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
