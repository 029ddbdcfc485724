package history

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/shared/apperror"
	"github.com/Ezra12363/Conge-sub001/internal/shared/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{service: service, logger: l}
}

// ListForRequest streams the audit trail of one request in ascending
// timestamp order. The optional `after` query (RFC3339) resumes a previous
// page.
func (h *Handler) ListForRequest(c *gin.Context) {
	requestID := c.Param("id")
	if _, err := uuid.Parse(requestID); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request id", nil)
		return
	}

	var after *time.Time
	if raw := c.Query("after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid after timestamp, expected RFC3339", nil)
			return
		}
		after = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.service.ListFor(c.Request.Context(), requestID, after, limit)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
