package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusops/coe-api/internal/models"
	appErrors "github.com/campusops/coe-api/pkg/errors"
	"github.com/campusops/coe-api/pkg/response"
)

type chatService interface {
	Ask(ctx context.Context, req models.AskRequest) (string, error)
	History(ctx context.Context, email string) ([]models.HistoryEntry, error)
}

type chatObserver interface {
	ObserveChatCompletion(duration time.Duration)
}

// ChatHandler exposes the assistant endpoint and the per-user
// conversation log.
type ChatHandler struct {
	service chatService
	metrics chatObserver
}

func NewChatHandler(svc chatService, metrics chatObserver) *ChatHandler {
	return &ChatHandler{service: svc, metrics: metrics}
}

// Ask godoc
// @Summary Ask the assistant a question
// @Description Answers from the knowledge base and current timetable
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.AskRequest true "Question payload"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "message is required"))
		return
	}

	start := time.Now()
	answer, err := h.service.Ask(c.Request.Context(), req)
	if h.metrics != nil {
		h.metrics.ObserveChatCompletion(time.Since(start))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"answer": appErrors.ErrChatFailed.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// History godoc
// @Summary Fetch a user's conversation history
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.HistoryRequest true "History lookup"
// @Success 200 {array} models.HistoryEntry
// @Router /history [post]
func (h *ChatHandler) History(c *gin.Context) {
	var req models.HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.EmptyList(c)
		return
	}

	entries, err := h.service.History(c.Request.Context(), req.Email)
	if err != nil {
		response.EmptyList(c)
		return
	}

	response.List(c, entries)
}
