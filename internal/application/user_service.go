package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/grigorev/user-directory/internal/domain/entity"
	repo "github.com/grigorev/user-directory/internal/domain/repository"
	"github.com/grigorev/user-directory/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// blocked/deleted accounts alike so callers cannot probe which
	// accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name, email and password required")
	ErrNoIDs              = errors.New("no user ids provided")
)

// Service implements account registration, login and the bulk status
// lifecycle. The store is the single source of truth; redis only keeps
// an informational session record.
type Service struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *Service {
	return &Service{Repo: r, JWT: jwt, Redis: rdb, Logger: logger}
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

// Register creates an account with status active. The plaintext password
// is hashed immediately and never logged or returned.
func (s *Service) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       entity.StatusActive,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by email and password and issues a bearer token.
// last_login is touched only after the password has been verified.
func (s *Service) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		// only a missing account is a credential failure; store outages
		// must surface as internal errors, not 401s
		if errors.Is(err, repo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if u.Status != entity.StatusActive {
		return "", nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.Repo.TouchLastLogin(ctx, u.ID); err != nil {
		return "", nil, err
	}
	now := time.Now()
	u.LastLogin = &now

	token, _, err := s.JWT.Generate(u.ID, u.Email, string(u.Status))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", nil, err
	}

	s.recordSession(ctx, u)
	return token, u, nil
}

// recordSession keeps a best-effort session record in redis. Failures
// never fail the login and the access gate never reads this record.
func (s *Service) recordSession(ctx context.Context, u *entity.User) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(u.ID)
	fields := map[string]any{
		"user_id":      u.ID,
		"email":        u.Email,
		"name":         u.Name,
		"status":       string(u.Status),
		"logged_in_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.JWT.TTL)
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

// List returns the directory projection: deleted accounts are hidden,
// order is id ascending.
func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

// Block sets status=blocked for every matching id.
func (s *Service) Block(ctx context.Context, ids []int64) (int64, error) {
	return s.setStatus(ctx, ids, entity.StatusBlocked)
}

// Unblock sets status=active for every matching id. It also resurrects
// soft-deleted accounts; no transition is forbidden.
func (s *Service) Unblock(ctx context.Context, ids []int64) (int64, error) {
	return s.setStatus(ctx, ids, entity.StatusActive)
}

// Delete soft-deletes: rows are retained and hidden from List.
func (s *Service) Delete(ctx context.Context, ids []int64) (int64, error) {
	return s.setStatus(ctx, ids, entity.StatusDeleted)
}

func (s *Service) setStatus(ctx context.Context, ids []int64, status entity.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}
	affected, err := s.Repo.UpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"status":   string(status),
			"ids":      len(ids),
			"affected": affected,
		}).Debug("bulk status update")
	}
	return affected, nil
}
