package history_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	listForFn func(ctx context.Context, requestID string, after *time.Time, limit int) ([]history.HistoryResponse, error)
}

func (f *fakeService) ListFor(ctx context.Context, requestID string, after *time.Time, limit int) ([]history.HistoryResponse, error) {
	return f.listForFn(ctx, requestID, after, limit)
}

func TestHandler_ListForRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	requestID := uuid.New().String()

	t.Run("success with cursor and limit", func(t *testing.T) {
		svc := &fakeService{
			listForFn: func(ctx context.Context, gotID string, after *time.Time, limit int) ([]history.HistoryResponse, error) {
				assert.Equal(t, requestID, gotID)
				assert.NotNil(t, after)
				assert.Equal(t, "2026-03-10T00:00:00Z", after.Format(time.RFC3339))
				assert.Equal(t, 20, limit)
				return []history.HistoryResponse{
					{ID: uuid.New().String(), RequestID: gotID, Action: history.ActionEdited},
				}, nil
			},
		}
		h := history.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: requestID}}
		c.Request = httptest.NewRequest(http.MethodGet,
			"/historiques/"+requestID+"?after=2026-03-10T00:00:00Z&limit=20", nil)

		h.ListForRequest(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool            `json:"ok"`
			Data json.RawMessage `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		var resp []history.HistoryResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("negative malformed request id", func(t *testing.T) {
		h := history.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/historiques/not-a-uuid", nil)

		h.ListForRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative malformed after timestamp", func(t *testing.T) {
		h := history.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: requestID}}
		c.Request = httptest.NewRequest(http.MethodGet, "/historiques/"+requestID+"?after=yesterday", nil)

		h.ListForRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
