package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

type fakeChecker struct {
	exists bool
	err    error
}

func (f fakeChecker) AccountExists(context.Context, int64) (bool, error) {
	return f.exists, f.err
}

type recordingStudentService struct {
	created   []*models.Student
	pwd       int64
	createErr error
}

func (r *recordingStudentService) CreateStudent(_ context.Context, s *models.Student, pwd int64) (*models.Student, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	s.ID = 1
	r.created = append(r.created, s)
	r.pwd = pwd
	return s, nil
}

func (r *recordingStudentService) GetStudentByAccount(context.Context, int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (r *recordingStudentService) GetAllStudents(context.Context) ([]*models.Student, error) {
	return nil, nil
}

func (r *recordingStudentService) UpdateStudent(context.Context, *models.Student, *int64) (*models.Student, error) {
	return nil, nil
}

func (r *recordingStudentService) DeleteStudent(context.Context, int64) error {
	return nil
}

func (r *recordingStudentService) VerifyCredentials(context.Context, int64, int64) error {
	return nil
}

var opts = Options{
	Enabled:    true,
	Name:       "Administrator",
	Account:    1,
	Password:   9999,
	Department: "full_stack",
}

func TestCreateDefaultData_CreatesAdmin(t *testing.T) {
	svc := &recordingStudentService{}

	err := CreateDefaultData(context.Background(), fakeChecker{}, svc, opts, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, svc.created, 1)

	admin := svc.created[0]
	assert.Equal(t, "Administrator", admin.Name)
	assert.Equal(t, int64(1), admin.Account)
	assert.Equal(t, models.PeriodAdmin, admin.PeriodNum)
	assert.Equal(t, models.DepartmentFullStack, admin.Department)
	assert.Equal(t, int64(9999), svc.pwd)
}

func TestCreateDefaultData_Skips(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		checker fakeChecker
	}{
		{"disabled", Options{}, fakeChecker{}},
		{"already exists", opts, fakeChecker{exists: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &recordingStudentService{}
			err := CreateDefaultData(context.Background(), tt.checker, svc, tt.opts, zerolog.Nop())
			require.NoError(t, err)
			assert.Empty(t, svc.created)
		})
	}
}

func TestCreateDefaultData_RaceIsNotAnError(t *testing.T) {
	svc := &recordingStudentService{createErr: apperrors.ErrAccountAlreadyExists}

	err := CreateDefaultData(context.Background(), fakeChecker{}, svc, opts, zerolog.Nop())
	assert.NoError(t, err)
}

func TestCreateDefaultData_Errors(t *testing.T) {
	err := CreateDefaultData(context.Background(), fakeChecker{err: errors.New("db down")}, &recordingStudentService{}, opts, zerolog.Nop())
	assert.ErrorContains(t, err, "db down")

	svc := &recordingStudentService{createErr: apperrors.ErrInvalidAccount}
	err = CreateDefaultData(context.Background(), fakeChecker{}, svc, opts, zerolog.Nop())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
