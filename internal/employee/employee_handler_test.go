package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ezra12363/Conge-sub001/internal/employee"
	employeeerrors "github.com/Ezra12363/Conge-sub001/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHandler_CreateAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "Amina Torres", req.FullName)
			return employee.EmployeeResponse{
				ID:        uuid.New().String(),
				FullName:  req.FullName,
				Matricule: "MAT-000042",
				Role:      employee.RoleEmploye,
				Grade:     "C",
			}, nil
		},
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
			}, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employes",
		strings.NewReader(`{"full_name":"Amina Torres","email":"amina.torres@example.test","hire_date":"2024-09-01"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "MAT-000042")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/employes?page=1&page_size=2", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"meta"`)
}

func TestHandler_Create_ValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := employee.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employes", strings.NewReader(`{"full_name":"Amina"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env struct {
		Ok bool `json:"ok"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
}

func TestHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(ctx context.Context, gotID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				return employee.EmployeeResponse{ID: gotID, FullName: "Amina Torres"}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employes/"+id, nil)

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(ctx context.Context, gotID string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employes/"+id, nil)

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New().String()

	svc := &fakeService{
		deleteFn: func(ctx context.Context, gotID string) error {
			assert.Equal(t, id, gotID)
			return nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/employes/"+id, nil)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
