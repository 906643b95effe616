package serve

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"love_fold_go/config"
	"love_fold_go/fold"
	"love_fold_go/logger"
	"love_fold_go/seq_encoder"
)

type encodeRequest struct {
	Name1    string `json:"name1"`
	Name2    string `json:"name2"`
	Strategy string `json:"strategy"`
}

type analyzeRequest struct {
	PDB      string `json:"pdb" binding:"required"`
	Sequence string `json:"sequence"`
}

type linkerResponse struct {
	Strategy    string `json:"strategy"`
	Label       string `json:"label"`
	Motif       string `json:"motif"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// handlers carries what the routes need beyond the request.
type handlers struct {
	folder          fold.Folder
	defaultStrategy string
}

// NewRouter builds the JSON API. folder answers /api/fold; defaultStrategy
// applies when a request names none.
func NewRouter(folder fold.Folder, defaultStrategy string) *gin.Engine {
	h := handlers{folder: folder, defaultStrategy: defaultStrategy}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", h.health)
	api := r.Group("/api")
	api.GET("/linkers", h.linkers)
	api.POST("/encode", h.encode)
	api.POST("/analyze", h.analyze)
	api.POST("/fold", h.foldNames)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.L().Info("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (h handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": config.MainVersion})
}

func (h handlers) linkers(c *gin.Context) {
	out := make([]linkerResponse, 0, len(seq_encoder.Strategies))
	for _, s := range seq_encoder.Strategies {
		l := s.Linker()
		out = append(out, linkerResponse{
			Strategy:    s.String(),
			Label:       l.Label,
			Motif:       l.Motif,
			Description: l.Description,
			Default:     s == seq_encoder.DefaultStrategy,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h handlers) strategy(name string) (seq_encoder.Strategy, error) {
	if name == "" {
		name = h.defaultStrategy
	}
	return seq_encoder.ParseStrategy(name)
}

func (h handlers) encode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strategy, err := h.strategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := seq_encoder.Encode(req.Name1, req.Name2, strategy)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"encoding":    res,
		"composition": seq_encoder.Composition(res.Sequence),
	})
}

func (h handlers) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fold.Analyze(req.PDB, req.Sequence))
}

func (h handlers) foldNames(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strategy, err := h.strategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := fold.Run(c.Request.Context(), h.folder, fold.Request{
		Name1:    req.Name1,
		Name2:    req.Name2,
		Strategy: strategy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// writeError maps pipeline errors to status codes.
func writeError(c *gin.Context, err error) {
	var lengthErr *seq_encoder.LengthError
	var residueErr *seq_encoder.InvalidResidueError
	var emptyErr *seq_encoder.EmptySequenceError

	switch {
	case errors.As(err, &lengthErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  lengthErr.Error(),
			"actual": lengthErr.Actual,
			"max":    lengthErr.Max,
		})
	case errors.As(err, &residueErr), errors.As(err, &emptyErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case config.IsKind(err, config.KindPredictor), errors.Is(err, fold.ErrEmptyStructure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.L().Error("http.unhandled", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
