package repository

import (
	"context"
	"errors"

	"murray-moving/internal/data/entity"
	"murray-moving/pkg/database"

	"go.uber.org/zap"
)

var (
	ErrDuplicate       = errors.New("already exists")
	ErrSessionNotFound = errors.New("session not found or already revoked")
)

// Lookups return (nil, nil) when no record matches. Updates do the same for
// unknown IDs and never create a record.

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type QuoteRepository interface {
	// Create assigns ID, CreatedAt and the initial status to quote.
	Create(ctx context.Context, quote *entity.QuoteRequest) error
	FindByID(ctx context.Context, id int64) (*entity.QuoteRequest, error)
	// FindAll returns every quote, newest first.
	FindAll(ctx context.Context) ([]*entity.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entity.QuoteStatus) (*entity.QuoteRequest, error)
}

type ContactRepository interface {
	// Create assigns ID and CreatedAt and marks the submission unread.
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error)
	// FindAll returns every submission, newest first.
	FindAll(ctx context.Context) ([]*entity.ContactSubmission, error)
	UpdateRead(ctx context.Context, id int64, isRead bool) (*entity.ContactSubmission, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
	// CleanExpiredSessions deletes dead sessions and returns how many went.
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Quote   QuoteRepository
	Contact ContactRepository
}

// NewRepository returns PostgreSQL-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Quote:   NewQuoteRepository(db, log),
		Contact: NewContactRepository(db, log),
	}
}

// NewMemoryRepository returns repositories sharing one process-local store.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := newMemoryStore(nil)
	return store.repository(log)
}
