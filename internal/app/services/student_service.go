package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student, pwd int64) (*models.Student, error)
	GetStudentByAccount(ctx context.Context, account int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student, pwd *int64) (*models.Student, error)
	DeleteStudent(ctx context.Context, account int64) error
	VerifyCredentials(ctx context.Context, account int64, pwd int64) error
}

type studentServiceImpl struct {
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// validateStudent normalizes and checks the mutable fields of a student
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}

	student.Name = strings.TrimSpace(student.Name)
	if student.Name == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if student.Account <= 0 {
		return apperrors.ErrInvalidAccount
	}

	if student.Age != nil && (*student.Age < 0 || *student.Age > 150) {
		return apperrors.NewValidationError("age out of range")
	}

	if !student.PeriodNum.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown periodNum %q", student.PeriodNum))
	}

	if !student.Department.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown department %q", student.Department))
	}

	return nil
}

// CreateStudent hashes the credential and inserts the student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student, pwd int64) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}
	if pwd < 0 {
		return nil, apperrors.NewValidationError("pwd must not be negative")
	}

	hash, err := auth.HashPIN(pwd)
	if err != nil {
		return nil, fmt.Errorf("error hashing credential: %w", err)
	}
	student.PasswordHash = hash

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	s.logger.Info().Int64("studentID", id).Int64("account", student.Account).Msg("Student created")
	return student, nil
}

// GetStudentByAccount retrieves a student by account
func (s *studentServiceImpl) GetStudentByAccount(ctx context.Context, account int64) (*models.Student, error) {
	if account <= 0 {
		return nil, apperrors.ErrInvalidAccount
	}

	student, err := s.studentRepo.GetByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces every mutable field and returns the stored record.
// The credential is re-hashed only when pwd is set.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student, pwd *int64) (*models.Student, error) {
	if student == nil {
		return nil, apperrors.NewValidationError("student is nil")
	}

	// A missing account is reported before any payload problem.
	if _, err := s.GetStudentByAccount(ctx, student.Account); err != nil {
		return nil, err
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	student.PasswordHash = ""
	if pwd != nil {
		if *pwd < 0 {
			return nil, apperrors.NewValidationError("pwd must not be negative")
		}
		hash, err := auth.HashPIN(*pwd)
		if err != nil {
			return nil, fmt.Errorf("error hashing credential: %w", err)
		}
		student.PasswordHash = hash
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return s.GetStudentByAccount(ctx, student.Account)
}

// DeleteStudent deletes a student by account
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, account int64) error {
	if account <= 0 {
		return apperrors.ErrInvalidAccount
	}

	if err := s.studentRepo.Delete(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.logger.Info().Int64("account", account).Msg("Student deleted")
	return nil
}

// VerifyCredentials compares pwd with the stored hash. Unknown accounts and
// mismatches both yield ErrInvalidCredentials.
func (s *studentServiceImpl) VerifyCredentials(ctx context.Context, account int64, pwd int64) error {
	if account <= 0 {
		return apperrors.ErrInvalidAccount
	}

	hash, err := s.studentRepo.GetPasswordHash(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return fmt.Errorf("error verifying credentials: %w", err)
	}

	if !auth.CheckPIN(hash, pwd) {
		s.logger.Warn().Int64("account", account).Msg("Credential mismatch")
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
