package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/account/domain"
	"github.com/piadesu/attn-store/internal/account/password"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionTokenBytes = 32
	minPasswordLength = 8
)

type Params struct {
	fx.In

	Config   config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Sessions domain.SessionRepository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          domain.Repository
	sessions      domain.SessionRepository
	sessionTTL    time.Duration
	singleAccount bool
}

func New(p Params) domain.Service {
	ttlHours := p.Config.SessionTTLHours
	if ttlHours <= 0 {
		ttlHours = 7 * 24
	}
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("account.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		sessions:      p.Sessions,
		sessionTTL:    time.Duration(ttlHours) * time.Hour,
		singleAccount: p.Config.SingleAccount,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Profile, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrInvalidPassword
	}
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidName
	}

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	if s.singleAccount {
		count, err := s.repo.Count(ctx, s.db)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrAccountLimit
		}
	}

	hashed, err := password.Hash(strings.TrimSpace(req.Password))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           s.genID.Generate().Int64(),
		Username:     username,
		PasswordHash: hashed,
		FirstName:    firstName,
		MiddleName:   normalizeOptional(req.MiddleName),
		LastName:     lastName,
		DateOfBirth:  dateOfBirth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, s.db, account); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	s.log.Info("account created", zap.String("username", account.Username))

	profile := s.toProfile(account)
	return &profile, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	// Unknown username and wrong password are indistinguishable.
	if account == nil || !password.Verify(req.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:               s.genID.Generate().Int64(),
		AccountID:        account.ID,
		SessionTokenHash: hashToken(rawToken),
		UserAgent:        strings.TrimSpace(req.UserAgent),
		IPAddress:        strings.TrimSpace(req.IPAddress),
		ExpiresAt:        now.Add(s.sessionTTL),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.sessions.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
		Profile:   s.toProfile(account),
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessions.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrInvalidSession
	}

	return s.sessions.Revoke(ctx, s.db, session.ID, time.Now().UTC())
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.Account, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessions.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}

	now := time.Now().UTC()
	if session.RevokedAt != nil {
		return nil, domain.ErrSessionRevoked
	}
	if now.After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	if err := s.sessions.UpdateLastSeen(ctx, s.db, session.ID, now); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, s.db, session.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidSession
	}
	return account, nil
}

func (s *Service) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	account, err := s.repo.FindByUsername(ctx, s.db, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	profile := s.toProfile(account)
	return &profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	account, err := s.repo.FindByUsername(ctx, s.db, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if firstName == "" {
			return nil, domain.ErrInvalidName
		}
		account.FirstName = firstName
	}
	if req.MiddleName != nil {
		account.MiddleName = normalizeOptional(req.MiddleName)
	}
	if req.LastName != nil {
		lastName := strings.TrimSpace(*req.LastName)
		if lastName == "" {
			return nil, domain.ErrInvalidName
		}
		account.LastName = lastName
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		account.DateOfBirth = dateOfBirth
	}
	if req.Password != nil {
		if len(strings.TrimSpace(*req.Password)) < minPasswordLength {
			return nil, domain.ErrInvalidPassword
		}
		hashed, err := password.Hash(strings.TrimSpace(*req.Password))
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hashed
	}

	account.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, account); err != nil {
		return nil, err
	}

	profile := s.toProfile(account)
	return &profile, nil
}

func (s *Service) toProfile(a *domain.Account) domain.Profile {
	return domain.Profile{
		ID:          snowflake.ID(a.ID).String(),
		Username:    a.Username,
		FirstName:   a.FirstName,
		MiddleName:  a.MiddleName,
		LastName:    a.LastName,
		DateOfBirth: a.DateOfBirth,
		CreatedAt:   a.CreatedAt,
	}
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
