package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStudentService struct {
	students  map[int64]*models.Student
	pwds      map[int64]int64
	lastPwd   *int64
	listError error
}

func newFakeStudentService() *fakeStudentService {
	return &fakeStudentService{students: map[int64]*models.Student{}, pwds: map[int64]int64{}}
}

func (f *fakeStudentService) CreateStudent(_ context.Context, s *models.Student, pwd int64) (*models.Student, error) {
	if _, ok := f.students[s.Account]; ok {
		return nil, apperrors.ErrAccountAlreadyExists
	}
	s.ID = int64(len(f.students) + 1)
	s.PasswordHash = "hashed"
	f.students[s.Account] = s
	f.pwds[s.Account] = pwd
	return s, nil
}

func (f *fakeStudentService) GetStudentByAccount(_ context.Context, account int64) (*models.Student, error) {
	s, ok := f.students[account]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentService) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	if f.listError != nil {
		return nil, f.listError
	}
	out := []*models.Student{}
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, s *models.Student, pwd *int64) (*models.Student, error) {
	existing, ok := f.students[s.Account]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	s.ID = existing.ID
	f.students[s.Account] = s
	f.lastPwd = pwd
	return s, nil
}

func (f *fakeStudentService) DeleteStudent(_ context.Context, account int64) error {
	if _, ok := f.students[account]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, account)
	return nil
}

func (f *fakeStudentService) VerifyCredentials(_ context.Context, account int64, pwd int64) error {
	stored, ok := f.pwds[account]
	if !ok || stored != pwd {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

type fakeAwardService struct {
	awards   map[int64]*models.Award
	accounts map[int64]bool
	nextID   int64
}

func newFakeAwardService(accounts ...int64) *fakeAwardService {
	f := &fakeAwardService{awards: map[int64]*models.Award{}, accounts: map[int64]bool{}}
	for _, a := range accounts {
		f.accounts[a] = true
	}
	return f
}

func (f *fakeAwardService) CreateAward(_ context.Context, a *models.Award) (*models.Award, error) {
	if a.StudentAccount != nil && !f.accounts[*a.StudentAccount] {
		return nil, apperrors.ErrAwardStudentNotExists
	}
	f.nextID++
	a.ID = f.nextID
	f.awards[a.ID] = a
	return a, nil
}

func (f *fakeAwardService) GetAwardByID(_ context.Context, id int64) (*models.Award, error) {
	a, ok := f.awards[id]
	if !ok {
		return nil, apperrors.ErrAwardNotFound
	}
	return a, nil
}

func (f *fakeAwardService) GetAllAwards(_ context.Context) ([]*models.Award, error) {
	out := []*models.Award{}
	for id := int64(1); id <= f.nextID; id++ {
		if a, ok := f.awards[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAwardService) UpdateAward(_ context.Context, a *models.Award) (*models.Award, error) {
	if _, ok := f.awards[a.ID]; !ok {
		return nil, apperrors.ErrAwardNotFound
	}
	f.awards[a.ID] = a
	return a, nil
}

func (f *fakeAwardService) DeleteAward(_ context.Context, id int64) error {
	if _, ok := f.awards[id]; !ok {
		return apperrors.ErrAwardNotFound
	}
	delete(f.awards, id)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code  string `json:"code"`
		Field string `json:"field"`
	} `json:"error"`
}

func newTestRouter(students *fakeStudentService, awards *fakeAwardService) *gin.Engine {
	router := gin.New()

	sc := NewStudentController(students)
	sg := router.Group("/students")
	sg.GET("/", sc.GetAllStudents)
	sg.GET("/:account", sc.GetStudent)
	sg.POST("/", sc.CreateStudent)
	sg.PUT("/:account", sc.UpdateStudent)
	sg.DELETE("/:account", sc.DeleteStudent)
	sg.POST("/:account/verify", sc.VerifyCredentials)

	ac := NewAwardController(awards)
	ag := router.Group("/awardsinfo")
	ag.GET("/", ac.GetAllAwards)
	ag.GET("/:id", ac.GetAward)
	ag.POST("/", ac.CreateAward)
	ag.PUT("/:id", ac.UpdateAward)
	ag.DELETE("/:id", ac.DeleteAward)

	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

const liPayload = `{"name":"Li","age":20,"account":1001,"pwd":1234,"periodNum":"SIX","department":"Java"}`
