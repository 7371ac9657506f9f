package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code     string          `json:"code"`
		Message  string          `json:"message"`
		Field    string          `json:"field"`
		Severity string          `json:"severity"`
		Details  json.RawMessage `json:"details"`
	} `json:"error"`
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	router := gin.New()
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "RES_001", "Student not found"},
		{"award not found wrapped", fmt.Errorf("lookup: %w", apperrors.ErrAwardNotFound), http.StatusNotFound, "RES_001", "Award not found"},
		{"duplicate account", apperrors.ErrAccountAlreadyExists, http.StatusConflict, "RES_002", "Student account already exists"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001", "Invalid credentials"},
		{"validation", apperrors.ErrInvalidAccount, http.StatusUnprocessableEntity, "VAL_001", "Validation failed"},
		{"unknown linked student", apperrors.ErrAwardStudentNotExists, http.StatusUnprocessableEntity, "VAL_001", "Validation failed"},
		{"custom not found", apperrors.NewResourceNotFoundError("No such cohort"), http.StatusNotFound, "RES_001", "No such cohort"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SRV_001", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestHandleAPIError_HidesInternalDetails(t *testing.T) {
	_, body := serveError(t, errors.New("pq: password authentication failed"))
	assert.NotContains(t, string(body.Error.Details), "password")
	assert.Equal(t, "CRITICAL", body.Error.Severity)
}

func TestHandleAPIError_LinkedStudentField(t *testing.T) {
	_, body := serveError(t, apperrors.ErrAwardStudentNotExists)
	assert.Equal(t, "studentAccount", body.Error.Field)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_001")
}

func TestRequestLogger_RequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name         string
		origins      []string
		origin       string
		expectHeader string
	}{
		{"wildcard", []string{"*"}, "http://frontend.test", "*"},
		{"listed origin", []string{"http://localhost:3000"}, "http://localhost:3000", "http://localhost:3000"},
		{"unlisted origin", []string{"http://localhost:3000"}, "http://evil.test", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins, time.Hour))
			router.GET("/students/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/students/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

type bindTarget struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age" binding:"min=0"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"name":"Li","age":3}`, http.StatusOK},
		{"missing required", `{"age":3}`, http.StatusUnprocessableEntity},
		{"malformed", `{"name":`, http.StatusUnprocessableEntity},
		{"wrong type", `{"name":"Li","age":"old"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/", func(c *gin.Context) {
				var target bindTarget
				if !BindJSON(c, &target) {
					return
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				assert.Contains(t, w.Body.String(), "VAL_001")
			}
		})
	}
}

func TestParseInt64Param(t *testing.T) {
	tests := []struct {
		path   string
		status int
	}{
		{"/items/42", http.StatusOK},
		{"/items/abc", http.StatusUnprocessableEntity},
		{"/items/0", http.StatusUnprocessableEntity},
		{"/items/-3", http.StatusUnprocessableEntity},
	}

	router := gin.New()
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := ParseInt64Param(c, "id")
		if !ok {
			return
		}
		c.String(http.StatusOK, "%d", id)
	})

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
