package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// Name of the UNIQUE constraint on students.account.
const studentAccountConstraint = "students_account_key"

var studentColumns = []string{"id", "name", "age", "position", "awards", "account", "period_num", "department"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db      DBTX
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX, timeout time.Duration) *StudentRepository {
	return &StudentRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		student               models.Student
		age                   sql.NullInt64
		position, awards      sql.NullString
		periodNum, department string
	)
	if err := row.Scan(&student.ID, &student.Name, &age, &position, &awards, &student.Account, &periodNum, &department); err != nil {
		return nil, err
	}
	student.Age = helpers.IntPtr(age)
	student.Position = helpers.StringPtr(position)
	student.Awards = helpers.StringPtr(awards)
	student.PeriodNum = models.PeriodNum(periodNum)
	student.Department = models.Department(department)
	return &student, nil
}

// Create inserts a student and returns the generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Insert("students").
		Columns("name", "age", "position", "awards", "account", "pwd_hash", "period_num", "department").
		Values(
			student.Name,
			helpers.GetNullIntFromInt(student.Age),
			helpers.GetNullString(student.Position),
			helpers.GetNullString(student.Awards),
			student.Account,
			student.PasswordHash,
			string(student.PeriodNum),
			string(student.Department),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentAccountConstraint) {
			logger.Warn().Int64("account", student.Account).Msg("Attempted to create student with duplicate account")
			return 0, apperrors.ErrAccountAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("student conflicts with an existing record")
		}
		logger.Error().Err(err).Int64("account", student.Account).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByAccount retrieves a student by business account
func (r *StudentRepository) GetByAccount(ctx context.Context, account int64) (*models.Student, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"account": account}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by account SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("account", account).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves every student in storage order
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update replaces the mutable fields of the student with the given account.
// The password hash is only written when non-empty.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	set := map[string]interface{}{
		"name":       student.Name,
		"age":        helpers.GetNullIntFromInt(student.Age),
		"position":   helpers.GetNullString(student.Position),
		"awards":     helpers.GetNullString(student.Awards),
		"period_num": string(student.PeriodNum),
		"department": string(student.Department),
	}
	if student.PasswordHash != "" {
		set["pwd_hash"] = student.PasswordHash
	}

	query, args, err := r.sb.Update("students").
		SetMap(set).
		Where(squirrel.Eq{"account": student.Account}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("account", student.Account).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes the student with the given account
func (r *StudentRepository) Delete(ctx context.Context, account int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"account": account}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("account", account).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetPasswordHash returns the stored credential hash for an account
func (r *StudentRepository) GetPasswordHash(ctx context.Context, account int64) (string, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Select("pwd_hash").
		From("students").
		Where(squirrel.Eq{"account": account}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get password hash SQL")
		return "", fmt.Errorf("failed to build get password hash query: %w", err)
	}

	var hash string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("account", account).Msg("Error scanning password hash")
		return "", fmt.Errorf("error retrieving password hash: %w", err)
	}

	return hash, nil
}

// GetIDByAccount resolves a business account to the surrogate id
func (r *StudentRepository) GetIDByAccount(ctx context.Context, account int64) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Select("id").
		From("students").
		Where(squirrel.Eq{"account": account}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student id SQL")
		return 0, fmt.Errorf("failed to build get student id query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("account", account).Msg("Error scanning student id")
		return 0, fmt.Errorf("error resolving student account: %w", err)
	}

	return id, nil
}

// AccountExists checks if a student account already exists
func (r *StudentRepository) AccountExists(ctx context.Context, account int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"account": account}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building account exists SQL")
		return false, fmt.Errorf("failed to build account exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("account", account).Msg("Error checking account existence")
		return false, fmt.Errorf("error checking account existence: %w", err)
	}

	return exists, nil
}
