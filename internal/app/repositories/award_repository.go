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

// AwardRepository handles award database operations
type AwardRepository struct {
	db      DBTX
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewAwardRepository creates a new AwardRepository
func NewAwardRepository(db DBTX, timeout time.Duration) *AwardRepository {
	return &AwardRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: timeout,
	}
}

// selectAwards joins the owning student so the account can be reported
// without a second round-trip.
func (r *AwardRepository) selectAwards() squirrel.SelectBuilder {
	return r.sb.Select("a.id", "a.name", "a.student_id", "s.account", "a.experience", "a.date_awarded").
		From("awards a").
		LeftJoin("students s ON s.id = a.student_id")
}

func scanAward(row pgx.Row) (*models.Award, error) {
	var (
		award                   models.Award
		studentID, account      sql.NullInt64
		experience, dateAwarded sql.NullString
	)
	if err := row.Scan(&award.ID, &award.Name, &studentID, &account, &experience, &dateAwarded); err != nil {
		return nil, err
	}
	award.StudentID = helpers.Int64Ptr(studentID)
	award.StudentAccount = helpers.Int64Ptr(account)
	award.Experience = helpers.StringPtr(experience)
	award.DateAwarded = helpers.StringPtr(dateAwarded)
	return &award, nil
}

// Create inserts an award and returns the generated id
func (r *AwardRepository) Create(ctx context.Context, award *models.Award) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Insert("awards").
		Columns("name", "student_id", "experience", "date_awarded").
		Values(
			award.Name,
			helpers.GetNullInt64(award.StudentID),
			helpers.GetNullString(award.Experience),
			helpers.GetNullString(award.DateAwarded),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create award SQL")
		return 0, fmt.Errorf("failed to build create award query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Student removed between account resolution and insert.
			return 0, apperrors.ErrAwardStudentNotExists
		}
		logger.Error().Err(err).Str("name", award.Name).Msg("Error executing create award query")
		return 0, fmt.Errorf("error creating award: %w", err)
	}

	return id, nil
}

// GetByID retrieves an award by ID
func (r *AwardRepository) GetByID(ctx context.Context, id int64) (*models.Award, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.selectAwards().
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get award by ID SQL")
		return nil, fmt.Errorf("failed to build get award query: %w", err)
	}

	award, err := scanAward(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAwardNotFound
		}
		logger.Error().Err(err).Int64("awardID", id).Msg("Error scanning award row")
		return nil, fmt.Errorf("error getting award by ID: %w", err)
	}

	return award, nil
}

// GetAll retrieves every award in storage order
func (r *AwardRepository) GetAll(ctx context.Context) ([]*models.Award, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.selectAwards().
		OrderBy("a.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all awards SQL")
		return nil, fmt.Errorf("failed to build get all awards query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all awards query")
		return nil, fmt.Errorf("error querying awards: %w", err)
	}
	defer rows.Close()

	awards := []*models.Award{}
	for rows.Next() {
		award, err := scanAward(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning award row during get all")
			return nil, fmt.Errorf("error scanning award row: %w", err)
		}
		awards = append(awards, award)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating award rows")
		return nil, fmt.Errorf("error iterating award rows: %w", err)
	}

	return awards, nil
}

// Update replaces every mutable field of an award
func (r *AwardRepository) Update(ctx context.Context, award *models.Award) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Update("awards").
		SetMap(map[string]interface{}{
			"name":         award.Name,
			"student_id":   helpers.GetNullInt64(award.StudentID),
			"experience":   helpers.GetNullString(award.Experience),
			"date_awarded": helpers.GetNullString(award.DateAwarded),
		}).
		Where(squirrel.Eq{"id": award.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update award SQL")
		return fmt.Errorf("failed to build update award query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAwardStudentNotExists
		}
		logger.Error().Err(err).Int64("awardID", award.ID).Msg("Error executing update award query")
		return fmt.Errorf("error updating award: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAwardNotFound
	}

	return nil
}

// Delete deletes an award by ID
func (r *AwardRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := r.sb.Delete("awards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete award SQL")
		return fmt.Errorf("failed to build delete award query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("awardID", id).Msg("Error executing delete award query")
		return fmt.Errorf("error deleting award: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAwardNotFound
	}

	return nil
}
