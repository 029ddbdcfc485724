package request_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ezra12363/Conge-sub001/internal/domain"
	"github.com/Ezra12363/Conge-sub001/internal/request"
	requesterrors "github.com/Ezra12363/Conge-sub001/internal/request/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, actorID string, req request.CreateRequestDTO) (request.RequestResponse, error)
	getAllFn  func(ctx context.Context, actorID, role string) ([]request.RequestResponse, error)
	getByIDFn func(ctx context.Context, actorID, role, id string) (request.RequestResponse, error)
	updateFn  func(ctx context.Context, actorID, role, id string, req request.UpdateRequestDTO) (request.RequestResponse, error)
	cancelFn  func(ctx context.Context, actorID, role, id string) (request.RequestResponse, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req request.CreateRequestDTO) (request.RequestResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakeService) GetAll(ctx context.Context, actorID, role string) ([]request.RequestResponse, error) {
	return f.getAllFn(ctx, actorID, role)
}

func (f *fakeService) GetByID(ctx context.Context, actorID, role, id string) (request.RequestResponse, error) {
	return f.getByIDFn(ctx, actorID, role, id)
}

func (f *fakeService) Update(ctx context.Context, actorID, role, id string, req request.UpdateRequestDTO) (request.RequestResponse, error) {
	return f.updateFn(ctx, actorID, role, id, req)
}

func (f *fakeService) Cancel(ctx context.Context, actorID, role, id string) (request.RequestResponse, error) {
	return f.cancelFn(ctx, actorID, role, id)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, gotActor string, req request.CreateRequestDTO) (request.RequestResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, "leave", req.Kind)
				return request.RequestResponse{
					ID:     uuid.New().String(),
					Kind:   req.Kind,
					Days:   5,
					Status: string(domain.StatusPending),
				}, nil
			},
		}
		h := request.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/requests",
			strings.NewReader(`{"kind":"leave","start_date":"2026-03-02","end_date":"2026-03-06"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		var resp request.RequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, 5, resp.Days)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
	})

	t.Run("negative missing dates", func(t *testing.T) {
		h := request.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(`{"kind":"leave"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative inverted range from service", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, gotActor string, req request.CreateRequestDTO) (request.RequestResponse, error) {
				return request.RequestResponse{}, requesterrors.ErrInvalidDateRange
			},
		}
		h := request.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/requests",
			strings.NewReader(`{"kind":"leave","start_date":"2026-03-06","end_date":"2026-03-02"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_RANGE", env.Error.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()

	svc := &fakeService{
		getAllFn: func(ctx context.Context, gotActor, role string) ([]request.RequestResponse, error) {
			assert.Equal(t, actorID, gotActor)
			assert.Equal(t, "rh", role)
			return []request.RequestResponse{
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
			}, nil
		},
	}
	h := request.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", actorID)
	c.Set("role", "rh")
	c.Request = httptest.NewRequest(http.MethodGet, "/requests?page=1&page_size=2", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
	env := decodeEnvelope(t, w)
	var resp []request.RequestResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			cancelFn: func(ctx context.Context, gotActor, role, gotID string) (request.RequestResponse, error) {
				assert.Equal(t, id, gotID)
				return request.RequestResponse{ID: gotID, Status: string(domain.StatusCancelled)}, nil
			},
		}
		h := request.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Set("role", "employe")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPost, "/requests/"+id+"/cancel", nil)

		h.Cancel(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
	})

	t.Run("negative already approved", func(t *testing.T) {
		svc := &fakeService{
			cancelFn: func(ctx context.Context, gotActor, role, gotID string) (request.RequestResponse, error) {
				return request.RequestResponse{}, requesterrors.ErrNotPending("APPROVED")
			},
		}
		h := request.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Set("role", "employe")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPost, "/requests/"+id+"/cancel", nil)

		h.Cancel(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}
