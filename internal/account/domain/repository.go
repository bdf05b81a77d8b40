package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, account *Account) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Account, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*Account, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, account *Account) error
}

type SessionRepository interface {
	Create(ctx context.Context, db *gorm.DB, session *Session) error
	FindByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	Revoke(ctx context.Context, db *gorm.DB, id int64, at time.Time) error
	UpdateLastSeen(ctx context.Context, db *gorm.DB, id int64, at time.Time) error
}
