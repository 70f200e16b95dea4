//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockStatementService := new(MockStatementService)
	mockResponseService := new(MockResponseService)

	r := gin.Default()

	mockStatementService.On("List", mock.Anything, mock.Anything).Return([]*statements.Statement{}, nil)
	mockStatementService.On("GetByID", mock.Anything, mock.Anything).Return(nil, statements.ErrStatementNotFound)
	mockStatementService.On("Serialize", mock.Anything, mock.Anything).Return(&statements.SerializedStatement{}, nil)
	mockStatementService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockResponseService.On("ListResponses", mock.Anything, mock.Anything, mock.Anything).Return([]*statements.Response{}, nil)
	mockResponseService.On("GetResponseCount", mock.Anything, mock.Anything, mock.Anything).Return(uint(0), nil)
	mockResponseService.On("RemoveResponse", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	SetupRoutes(r, mockStatementService, mockResponseService)

	// Body-less requests reach the handlers and fail validation with 400 at worst
	tests := []struct {
		method       string
		url          string
		expectedCode int
	}{
		{"POST", "/api/v1/dms/statements", http.StatusBadRequest},
		{"GET", "/api/v1/dms/statements", http.StatusOK},
		{"GET", "/api/v1/dms/statements/s-1/serialized", http.StatusOK},
		{"PUT", "/api/v1/dms/statements/s-1/extra-data", http.StatusBadRequest},
		{"DELETE", "/api/v1/dms/statements/s-1", http.StatusNoContent},
		{"POST", "/api/v1/dms/statements/s-1/responses", http.StatusBadRequest},
		{"GET", "/api/v1/dms/statements/s-1/responses", http.StatusOK},
		{"GET", "/api/v1/dms/statements/s-1/responses/count?text=Hi", http.StatusOK},
		{"DELETE", "/api/v1/dms/statements/s-1/responses?text=Hi", http.StatusOK},
		{"POST", "/api/v1/dms/dialogs", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	// GET /statements/:id is registered and reports unknown statements as 404
	req, _ := http.NewRequest("GET", "/api/v1/dms/statements/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error retrieving statement")
}
