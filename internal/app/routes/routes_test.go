package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/studentrecords/internal/app/controllers"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, controllers.NewStudentController(nil), controllers.NewAwardController(nil), p)
	return router
}

func TestSetupRouter_RouteTable(t *testing.T) {
	router := newRouter(fakePinger{})

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /students/",
		"GET /students/:account",
		"POST /students/",
		"PUT /students/:account",
		"DELETE /students/:account",
		"POST /students/:account/verify",
		"GET /awardsinfo/",
		"GET /awardsinfo/:id",
		"POST /awardsinfo/",
		"PUT /awardsinfo/:id",
		"DELETE /awardsinfo/:id",
		"GET /health",
		"GET /ping",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(fakePinger{err: tt.err})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestPing(t *testing.T) {
	router := newRouter(fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
