package domain

import "time"

type Account struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:text;not null;uniqueIndex:ux_accounts_username"`
	PasswordHash string     `json:"-" gorm:"type:text;not null"`
	FirstName    string     `json:"first_name" gorm:"type:text;not null"`
	MiddleName   *string    `json:"middle_name,omitempty" gorm:"type:text"`
	LastName     string     `json:"last_name" gorm:"type:text;not null"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Account) TableName() string { return "accounts" }

// Session is a persisted login session. Only the sha256 of the raw
// token is stored.
type Session struct {
	ID               int64      `gorm:"primaryKey"`
	AccountID        int64      `gorm:"column:account_id;not null;index"`
	SessionTokenHash string     `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string     `gorm:"column:user_agent;type:text"`
	IPAddress        string     `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time  `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time `gorm:"column:revoked_at"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time  `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Session) TableName() string { return "sessions" }
