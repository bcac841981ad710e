package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatmagorgulu/conversation-connector/internal/logger"
	"github.com/fatmagorgulu/conversation-connector/internal/model"
	"github.com/fatmagorgulu/conversation-connector/internal/normalize"
)

// New returns the gin engine serving the normalizer as a pipeline stage. The
// orchestrator posts the invocation body and receives the outbound message;
// delivery to Slack happens in a later stage.
func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogMiddleware())
	r.POST("/normalize", HandleNormalize)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// HandleNormalize binds the invocation body, runs the transform, and writes
// the outbound message. Validation failures come back as 422 with the
// offending field so the orchestrator can tell causes apart.
func HandleNormalize(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		logger.GetLogger().Error("empty request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}

	var req model.NormalizeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.GetLogger().Error("failed to parse invocation body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	out, err := normalize.Normalize(&req)
	if err != nil {
		var verr *normalize.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": verr.Error(),
				"field": verr.Field,
			})
			return
		}
		logger.GetLogger().Error("normalize failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, out)
}
