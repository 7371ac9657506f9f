package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// AwardService defines the interface for award-related operations
type AwardService interface {
	CreateAward(ctx context.Context, award *models.Award) (*models.Award, error)
	GetAwardByID(ctx context.Context, id int64) (*models.Award, error)
	GetAllAwards(ctx context.Context) ([]*models.Award, error)
	UpdateAward(ctx context.Context, award *models.Award) (*models.Award, error)
	DeleteAward(ctx context.Context, id int64) error
}

type awardServiceImpl struct {
	awardRepo   AwardStore
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewAwardService creates a new award service instance
func NewAwardService(awardRepo AwardStore, studentRepo StudentStore, logger zerolog.Logger) AwardService {
	return &awardServiceImpl{
		awardRepo:   awardRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *awardServiceImpl) validateAward(award *models.Award) error {
	if award == nil {
		return apperrors.NewValidationError("award is nil")
	}

	award.Name = strings.TrimSpace(award.Name)
	if award.Name == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	if award.StudentAccount != nil && *award.StudentAccount <= 0 {
		return apperrors.ErrInvalidAccount
	}

	return nil
}

// resolveStudent maps the optional student account onto the surrogate key
// stored in awards.student_id.
func (s *awardServiceImpl) resolveStudent(ctx context.Context, award *models.Award) error {
	award.StudentID = nil
	if award.StudentAccount == nil {
		return nil
	}

	id, err := s.studentRepo.GetIDByAccount(ctx, *award.StudentAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrAwardStudentNotExists
		}
		return fmt.Errorf("error resolving student account: %w", err)
	}
	award.StudentID = &id
	return nil
}

// CreateAward creates a new award; the id is generated by storage
func (s *awardServiceImpl) CreateAward(ctx context.Context, award *models.Award) (*models.Award, error) {
	if err := s.validateAward(award); err != nil {
		return nil, err
	}
	if err := s.resolveStudent(ctx, award); err != nil {
		return nil, err
	}

	id, err := s.awardRepo.Create(ctx, award)
	if err != nil {
		if errors.Is(err, apperrors.ErrAwardStudentNotExists) {
			return nil, apperrors.ErrAwardStudentNotExists
		}
		return nil, fmt.Errorf("error creating award: %w", err)
	}

	award.ID = id
	s.logger.Info().Int64("awardID", id).Msg("Award created")
	return award, nil
}

// GetAwardByID retrieves an award by ID
func (s *awardServiceImpl) GetAwardByID(ctx context.Context, id int64) (*models.Award, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidAwardID
	}

	award, err := s.awardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAwardNotFound) {
			return nil, apperrors.ErrAwardNotFound
		}
		return nil, fmt.Errorf("error retrieving award: %w", err)
	}
	return award, nil
}

// GetAllAwards retrieves all awards
func (s *awardServiceImpl) GetAllAwards(ctx context.Context) ([]*models.Award, error) {
	awards, err := s.awardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving awards: %w", err)
	}
	return awards, nil
}

// UpdateAward replaces every mutable field of an existing award and returns the stored record
func (s *awardServiceImpl) UpdateAward(ctx context.Context, award *models.Award) (*models.Award, error) {
	if award == nil {
		return nil, apperrors.NewValidationError("award is nil")
	}
	if award.ID <= 0 {
		return nil, apperrors.ErrInvalidAwardID
	}

	// A missing award is reported before any payload problem.
	if _, err := s.GetAwardByID(ctx, award.ID); err != nil {
		return nil, err
	}

	if err := s.validateAward(award); err != nil {
		return nil, err
	}
	if err := s.resolveStudent(ctx, award); err != nil {
		return nil, err
	}

	if err := s.awardRepo.Update(ctx, award); err != nil {
		if apperrors.Is(err, apperrors.ErrAwardNotFound, apperrors.ErrAwardStudentNotExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating award: %w", err)
	}

	return s.GetAwardByID(ctx, award.ID)
}

// DeleteAward deletes an award by ID
func (s *awardServiceImpl) DeleteAward(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidAwardID
	}

	if err := s.awardRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrAwardNotFound) {
			return apperrors.ErrAwardNotFound
		}
		return fmt.Errorf("error deleting award: %w", err)
	}

	s.logger.Info().Int64("awardID", id).Msg("Award deleted")
	return nil
}
