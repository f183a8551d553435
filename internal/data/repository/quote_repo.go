package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"murray-moving/internal/data/entity"
	"murray-moving/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const quoteColumns = `id, first_name, last_name, email, phone, from_address, from_zip,
		       to_address, to_zip, move_date, home_size, home_type, services,
		       special_requests, distance, base_price, distance_price,
		       total_estimate, status, created_at`

type quoteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewQuoteRepository(db database.PgxIface, log *zap.Logger) QuoteRepository {
	return &quoteRepository{
		db:  db,
		log: log.With(zap.String("repository", "quote")),
	}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (first_name, last_name, email, phone,
		            from_address, from_zip, to_address, to_zip, move_date,
		            home_size, home_type, services, special_requests,
		            distance, base_price, distance_price, total_estimate, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at
	`

	services, err := json.Marshal(nonNil(quote.Services))
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	quote.Status = entity.QuoteStatusNew
	err = r.db.QueryRow(ctx, query,
		quote.FirstName,
		quote.LastName,
		quote.Email,
		quote.Phone,
		quote.FromAddress,
		quote.FromZip,
		quote.ToAddress,
		quote.ToZip,
		quote.MoveDate,
		quote.HomeSize,
		quote.HomeType,
		services,
		quote.SpecialRequests,
		quote.Distance,
		quote.BasePrice,
		quote.DistancePrice,
		quote.TotalEstimate,
		string(quote.Status),
	).Scan(&quote.ID, &quote.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create quote request",
			zap.Error(err),
			zap.String("email", quote.Email),
		)
		return fmt.Errorf("create quote request for %s: %w", quote.Email, err)
	}

	return nil
}

func (r *quoteRepository) FindByID(ctx context.Context, id int64) (*entity.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests WHERE id = $1`

	quote, err := scanQuote(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find quote request by ID",
			zap.Error(err),
			zap.Int64("quote_id", id),
		)
		return nil, fmt.Errorf("find quote request %d: %w", id, err)
	}

	return quote, nil
}

func (r *quoteRepository) FindAll(ctx context.Context) ([]*entity.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list quote requests", zap.Error(err))
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	defer rows.Close()

	quotes := []*entity.QuoteRequest{}
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			r.log.Error("Failed to scan quote request row", zap.Error(err))
			return nil, fmt.Errorf("scan quote request row: %w", err)
		}
		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote request rows: %w", err)
	}

	return quotes, nil
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id int64, status entity.QuoteStatus) (*entity.QuoteRequest, error) {
	query := `UPDATE quote_requests SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		r.log.Error("Failed to update quote status",
			zap.Error(err),
			zap.Int64("quote_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update quote %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func scanQuote(row pgx.Row) (*entity.QuoteRequest, error) {
	var (
		quote    entity.QuoteRequest
		services []byte
		status   string
	)

	err := row.Scan(
		&quote.ID,
		&quote.FirstName,
		&quote.LastName,
		&quote.Email,
		&quote.Phone,
		&quote.FromAddress,
		&quote.FromZip,
		&quote.ToAddress,
		&quote.ToZip,
		&quote.MoveDate,
		&quote.HomeSize,
		&quote.HomeType,
		&services,
		&quote.SpecialRequests,
		&quote.Distance,
		&quote.BasePrice,
		&quote.DistancePrice,
		&quote.TotalEstimate,
		&status,
		&quote.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	quote.Status = entity.QuoteStatus(status)
	if len(services) > 0 {
		if err := json.Unmarshal(services, &quote.Services); err != nil {
			return nil, fmt.Errorf("decode services: %w", err)
		}
	}
	quote.Services = nonNil(quote.Services)

	return &quote, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
