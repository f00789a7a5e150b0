package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"duplicate identity", apperrors.ErrDuplicateIdentity, http.StatusBadRequest},
		{"self deletion", apperrors.ErrSelfDeletion, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"survey not found", apperrors.ErrSurveyNotFound, http.StatusNotFound},
		{"storage failure", apperrors.NewStorageError(apperrors.ErrStorage, "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(t, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if _, ok := body["message"]; !ok {
				t.Error("response is missing the message field")
			}
		})
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w := handleError(t, apperrors.NewValidationError("Invalid ID parameter"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["message"] != "Invalid ID parameter" {
		t.Errorf("message = %q, want %q", body["message"], "Invalid ID parameter")
	}
}
