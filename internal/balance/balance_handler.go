package balance

import (
	"net/http"

	"github.com/Ezra12363/Conge-sub001/internal/employee"
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
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetAll returns every balance row. Reserved for RH/admin by the route
// policy.
func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetByEmployee returns the balances of one employee. Non RH/admin callers
// may only read their own.
func (h *Handler) GetByEmployee(c *gin.Context) {
	targetID := c.Param("id")
	if _, err := uuid.Parse(targetID); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid employee id", nil)
		return
	}

	role := c.GetString("role")
	actorID := c.GetString("employee_id")
	if role != employee.RoleRH && role != employee.RoleAdmin && actorID != targetID {
		response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), targetID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
