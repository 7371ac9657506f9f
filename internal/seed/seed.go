package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// AccountChecker reports whether a student account is already stored
type AccountChecker interface {
	AccountExists(ctx context.Context, account int64) (bool, error)
}

// Options describes the default admin-cohort student
type Options struct {
	Enabled    bool
	Name       string
	Account    int64
	Password   int64
	Department string
}

// CreateDefaultData creates the admin-cohort student if it doesn't exist.
func CreateDefaultData(ctx context.Context, checker AccountChecker, studentService services.StudentService, opts Options, lgr zerolog.Logger) error {
	if !opts.Enabled {
		lgr.Debug().Msg("Seeding disabled, skipping default data")
		return nil
	}

	lgr.Info().Int64("account", opts.Account).Msg("Checking/Creating default admin student...")

	exists, err := checker.AccountExists(ctx, opts.Account)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin student exists")
		return fmt.Errorf("error checking admin student: %w", err)
	}
	if exists {
		lgr.Info().Msg("Admin student already exists, skipping creation")
		return nil
	}

	admin := &appModels.Student{
		Name:       opts.Name,
		Account:    opts.Account,
		PeriodNum:  appModels.PeriodAdmin,
		Department: appModels.Department(opts.Department),
	}

	created, err := studentService.CreateStudent(ctx, admin, opts.Password)
	if err != nil {
		// Another instance may have seeded between the check and the insert.
		if errors.Is(err, apperrors.ErrAccountAlreadyExists) {
			lgr.Info().Msg("Admin student already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin student")
		return fmt.Errorf("error creating admin student: %w", err)
	}

	lgr.Info().Int64("studentID", created.ID).Msg("Default admin student created successfully")
	return nil
}
