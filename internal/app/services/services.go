package services

import (
	"context"

	"github.com/yigit/studentrecords/internal/app/models"
)

// Services defined in this package:
// - StudentService: student CRUD and credential verification
// - AwardService: award CRUD and linking awards to students

// StudentStore is the persistence contract StudentService depends on.
// *repositories.StudentRepository satisfies it.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByAccount(ctx context.Context, account int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, account int64) error
	GetPasswordHash(ctx context.Context, account int64) (string, error)
	GetIDByAccount(ctx context.Context, account int64) (int64, error)
}

// AwardStore is the persistence contract AwardService depends on.
// *repositories.AwardRepository satisfies it.
type AwardStore interface {
	Create(ctx context.Context, award *models.Award) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Award, error)
	GetAll(ctx context.Context) ([]*models.Award, error)
	Update(ctx context.Context, award *models.Award) error
	Delete(ctx context.Context, id int64) error
}
