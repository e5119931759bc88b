package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Kaduh15/api-consumption-measurement/config"
	"github.com/Kaduh15/api-consumption-measurement/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Domain error codes, on top of the validation codes in schemas.
const (
	CodeDoubleReport          = "DOUBLE_REPORT"
	CodeMeasureNotFound       = "MEASURE_NOT_FOUND"
	CodeMeasuresNotFound      = "MEASURES_NOT_FOUND"
	CodeConfirmationDuplicate = "CONFIRMATION_DUPLICATE"
)

// Recognizer extracts a numeric reading from a base64 meter image.
type Recognizer interface {
	Analyze(ctx context.Context, imageBase64, measureType string) (float64, error)
}

type Handler struct {
	cfg   *config.Config
	store *store.MeasureStore
	ai    Recognizer
	log   *zap.Logger
}

func New(cfg *config.Config, st *store.MeasureStore, ai Recognizer, log *zap.Logger) *Handler {
	return &Handler{cfg: cfg, store: st, ai: ai, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload", h.Upload)
	r.PATCH("/confirm", h.Confirm)
	r.GET("/image/:id", h.Image)
	r.GET("/healthz", h.Health)
	r.GET("/:customer_code/list", h.List)
	r.GET("/:customer_code/export", h.Export)

	r.NoRoute(h.NotFound)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": fmt.Sprintf("Route not found, go to %s/docs to see available routes", h.cfg.URLDeploy),
	})
}

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, code, description string) {
	c.JSON(status, gin.H{
		"error_code":        code,
		"error_description": description,
	})
}
