package repository

import (
	"context"
	"time"

	"github.com/piadesu/attn-store/internal/account/domain"
	"gorm.io/gorm"
)

type accountRepo struct{}

func Provide() domain.Repository {
	return &accountRepo{}
}

func (r *accountRepo) Create(ctx context.Context, db *gorm.DB, account *domain.Account) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO accounts (id, username, password_hash, first_name, middle_name, last_name, date_of_birth, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.Username,
		account.PasswordHash,
		account.FirstName,
		account.MiddleName,
		account.LastName,
		account.DateOfBirth,
		account.CreatedAt,
		account.UpdatedAt,
	).Error
}

func (r *accountRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Account, error) {
	var a domain.Account
	err := db.WithContext(ctx).Raw(
		`SELECT id, username, password_hash, first_name, middle_name, last_name, date_of_birth, created_at, updated_at
		 FROM accounts WHERE id = ?`,
		id,
	).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *accountRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.Account, error) {
	var a domain.Account
	err := db.WithContext(ctx).Raw(
		`SELECT id, username, password_hash, first_name, middle_name, last_name, date_of_birth, created_at, updated_at
		 FROM accounts WHERE username = ?`,
		username,
	).Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, nil
	}
	return &a, nil
}

func (r *accountRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Account{}).Count(&count).Error
	return count, err
}

func (r *accountRepo) Update(ctx context.Context, db *gorm.DB, account *domain.Account) error {
	if account == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE accounts
		 SET password_hash = ?, first_name = ?, middle_name = ?, last_name = ?, date_of_birth = ?, updated_at = ?
		 WHERE id = ?`,
		account.PasswordHash,
		account.FirstName,
		account.MiddleName,
		account.LastName,
		account.DateOfBirth,
		account.UpdatedAt,
		account.ID,
	).Error
}

type sessionRepo struct{}

func ProvideSession() domain.SessionRepository {
	return &sessionRepo{}
}

func (r *sessionRepo) Create(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO sessions (id, account_id, session_token_hash, user_agent, ip_address, expires_at, revoked_at, created_at, last_seen_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.AccountID,
		session.SessionTokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.RevokedAt,
		session.CreatedAt,
		session.LastSeenAt,
	).Error
}

func (r *sessionRepo) FindByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, session_token_hash, user_agent, ip_address, expires_at, revoked_at, created_at, last_seen_at
		 FROM sessions WHERE session_token_hash = ?`,
		tokenHash,
	).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, db *gorm.DB, id int64, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE sessions SET revoked_at = ? WHERE id = ?`,
		at,
		id,
	).Error
}

func (r *sessionRepo) UpdateLastSeen(ctx context.Context, db *gorm.DB, id int64, at time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE sessions SET last_seen_at = ? WHERE id = ?`,
		at,
		id,
	).Error
}
