package repository

import (
	"context"
	"errors"
	"fmt"

	"murray-moving/internal/data/entity"
	"murray-moving/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (first_name, last_name, email, subject, message, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, created_at
	`

	submission.IsRead = false
	err := r.db.QueryRow(ctx, query,
		submission.FirstName,
		submission.LastName,
		submission.Email,
		submission.Subject,
		submission.Message,
	).Scan(&submission.ID, &submission.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create contact submission",
			zap.Error(err),
			zap.String("email", submission.Email),
		)
		return fmt.Errorf("create contact submission for %s: %w", submission.Email, err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	query := `
		SELECT id, first_name, last_name, email, subject, message, is_read, created_at
		FROM contact_submissions
		WHERE id = $1
	`

	var c entity.ContactSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Subject,
		&c.Message,
		&c.IsRead,
		&c.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact submission by ID",
			zap.Error(err),
			zap.Int64("contact_id", id),
		)
		return nil, fmt.Errorf("find contact submission %d: %w", id, err)
	}

	return &c, nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]*entity.ContactSubmission, error) {
	query := `
		SELECT id, first_name, last_name, email, subject, message, is_read, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list contact submissions", zap.Error(err))
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*entity.ContactSubmission{}
	for rows.Next() {
		var c entity.ContactSubmission
		err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Subject,
			&c.Message,
			&c.IsRead,
			&c.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact submission row", zap.Error(err))
			return nil, fmt.Errorf("scan contact submission row: %w", err)
		}
		submissions = append(submissions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submission rows: %w", err)
	}

	return submissions, nil
}

func (r *contactRepository) UpdateRead(ctx context.Context, id int64, isRead bool) (*entity.ContactSubmission, error) {
	query := `UPDATE contact_submissions SET is_read = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isRead)
	if err != nil {
		r.log.Error("Failed to update contact read flag",
			zap.Error(err),
			zap.Int64("contact_id", id),
		)
		return nil, fmt.Errorf("update contact %d read flag: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}
