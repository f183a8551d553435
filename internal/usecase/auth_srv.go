package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"murray-moving/internal/data/entity"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/dto/request"
	"murray-moving/internal/dto/response"
	"murray-moving/pkg/metrics"
	"murray-moving/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultAdminPassword = "admin"

var checkPassword = utils.CheckPasswordHash

// dummyHash is compared against on unknown usernames so both login failure
// paths pay for one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword(uuid.NewString())
	return hash
})

// ClientInfo is recorded on the session a login creates.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context) (*response.UserResponse, error)
	// Authenticate resolves a session token to an identity. A token that
	// matches no live session yields (nil, nil).
	Authenticate(ctx context.Context, token string) (*utils.Identity, error)
	EnsureAdmin(ctx context.Context) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo    *repository.Repository
	config  *utils.Config
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		config:  config,
		metrics: m,
		log:     log.With(zap.String("service", "auth")),
		now:     time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		checkPassword(req.Password, dummyHash())
		s.metrics.AuthAttempt("failure")
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !checkPassword(req.Password, user.PasswordHash) {
		s.metrics.AuthAttempt("failure")
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID, client)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.metrics.AuthAttempt("success")
	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return ErrUnauthorized
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrUnauthorized
		}
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*response.UserResponse, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	user, err := s.repo.User.FindByID(ctx, identity.UserID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", identity.UserID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*utils.Identity, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID.String())
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find session user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return &utils.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// EnsureAdmin creates the configured admin account unless it already exists.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	cfg := s.config.Admin

	existing, err := s.repo.User.FindByUsername(ctx, cfg.Username)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	first, last := "Admin", "User"
	user := &entity.User{
		Username:     cfg.Username,
		PasswordHash: hash,
		FirstName:    &first,
		LastName:     &last,
		IsAdmin:      true,
	}
	if cfg.Email != "" {
		email := cfg.Email
		user.Email = &email
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	if cfg.Password == defaultAdminPassword {
		s.log.Warn("Admin account created with the default password; set ADMIN_PASSWORD",
			zap.String("username", cfg.Username))
	} else {
		s.log.Info("Admin account created", zap.String("username", cfg.Username))
	}
	return nil
}

func (s *authService) CleanExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("clean expired sessions: %w", err)
	}
	return removed, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID int64, client ClientInfo) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(s.config.Session.TTL()),
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
