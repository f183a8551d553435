package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"murray-moving/internal/data/entity"

	"go.uber.org/zap"
)

// memoryStore keeps every record kind behind a single lock. ID issuance and
// insertion happen in the same critical section, so concurrent creates never
// share an ID.
type memoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users    map[int64]*entity.User
	quotes   map[int64]*entity.QuoteRequest
	contacts map[int64]*entity.ContactSubmission
	sessions map[string]*entity.Session

	lastUserID    int64
	lastQuoteID   int64
	lastContactID int64

	lastQuoteAt   time.Time
	lastContactAt time.Time
}

func newMemoryStore(now func() time.Time) *memoryStore {
	if now == nil {
		now = time.Now
	}
	return &memoryStore{
		now:      now,
		users:    make(map[int64]*entity.User),
		quotes:   make(map[int64]*entity.QuoteRequest),
		contacts: make(map[int64]*entity.ContactSubmission),
		sessions: make(map[string]*entity.Session),
	}
}

func (s *memoryStore) repository(log *zap.Logger) *Repository {
	return &Repository{
		User:    &memoryUserRepository{store: s, log: log.With(zap.String("repository", "user"))},
		Session: &memorySessionRepository{store: s, log: log.With(zap.String("repository", "session"))},
		Quote:   &memoryQuoteRepository{store: s, log: log.With(zap.String("repository", "quote"))},
		Contact: &memoryContactRepository{store: s, log: log.With(zap.String("repository", "contact"))},
	}
}

// stamp returns a creation time strictly after *last. Must hold s.mu.
func (s *memoryStore) stamp(last *time.Time) time.Time {
	t := s.now().UTC()
	if !t.After(*last) {
		t = last.Add(time.Microsecond)
	}
	*last = t
	return t
}

// ==================== USERS ====================

type memoryUserRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrDuplicate
		}
	}

	s.lastUserID++
	user.ID = s.lastUserID
	s.users[user.ID] = cloneUser(user)

	r.log.Debug("User created", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// ==================== QUOTES ====================

type memoryQuoteRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryQuoteRepository) Create(ctx context.Context, quote *entity.QuoteRequest) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastQuoteID++
	quote.ID = s.lastQuoteID
	quote.CreatedAt = s.stamp(&s.lastQuoteAt)
	quote.Status = entity.QuoteStatusNew
	s.quotes[quote.ID] = quote.Clone()

	r.log.Debug("Quote request stored", zap.Int64("quote_id", quote.ID))
	return nil
}

func (r *memoryQuoteRepository) FindByID(ctx context.Context, id int64) (*entity.QuoteRequest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if q, ok := s.quotes[id]; ok {
		return q.Clone(), nil
	}
	return nil, nil
}

func (r *memoryQuoteRepository) FindAll(ctx context.Context) ([]*entity.QuoteRequest, error) {
	s := r.store
	s.mu.RLock()
	quotes := make([]*entity.QuoteRequest, 0, len(s.quotes))
	for _, q := range s.quotes {
		quotes = append(quotes, q.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(quotes, func(i, j int) bool {
		return newerFirst(quotes[i].BaseSimple, quotes[j].BaseSimple)
	})
	return quotes, nil
}

func (r *memoryQuoteRepository) UpdateStatus(ctx context.Context, id int64, status entity.QuoteStatus) (*entity.QuoteRequest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, nil
	}
	q.Status = status
	return q.Clone(), nil
}

// ==================== CONTACTS ====================

type memoryContactRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryContactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastContactID++
	submission.ID = s.lastContactID
	submission.CreatedAt = s.stamp(&s.lastContactAt)
	submission.IsRead = false
	c := *submission
	s.contacts[submission.ID] = &c

	r.log.Debug("Contact submission stored", zap.Int64("contact_id", submission.ID))
	return nil
}

func (r *memoryContactRepository) FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.contacts[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

func (r *memoryContactRepository) FindAll(ctx context.Context) ([]*entity.ContactSubmission, error) {
	s := r.store
	s.mu.RLock()
	submissions := make([]*entity.ContactSubmission, 0, len(s.contacts))
	for _, c := range s.contacts {
		out := *c
		submissions = append(submissions, &out)
	}
	s.mu.RUnlock()

	sort.Slice(submissions, func(i, j int) bool {
		return newerFirst(submissions[i].BaseSimple, submissions[j].BaseSimple)
	})
	return submissions, nil
}

func (r *memoryContactRepository) UpdateRead(ctx context.Context, id int64, isRead bool) (*entity.ContactSubmission, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return nil, nil
	}
	c.IsRead = isRead
	out := *c
	return &out, nil
}

// ==================== SESSIONS ====================

type memorySessionRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *session
	s.sessions[session.Token.String()] = &c
	return nil
}

func (r *memorySessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok || !session.IsValid(s.now()) {
		return nil, nil
	}
	out := *session
	return &out, nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, token string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return ErrSessionNotFound
	}
	now := s.now()
	session.RevokedAt = &now
	return nil
}

func (r *memorySessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int64
	for token, session := range s.sessions {
		if !session.IsValid(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// newerFirst orders by creation time descending, newest ID first on ties.
func newerFirst(a, b entity.BaseSimple) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
