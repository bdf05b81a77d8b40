package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Profile, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Authenticate(ctx context.Context, rawToken string) (*Account, error)
	GetProfile(ctx context.Context, username string) (*Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error)
}

type SignupRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
}

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

type LoginResult struct {
	RawToken  string
	ExpiresAt time.Time
	Profile   Profile
}

type UpdateProfileRequest struct {
	Username    string  `json:"-"`
	FirstName   *string `json:"first_name"`
	MiddleName  *string `json:"middle_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Password    *string `json:"password"`
}

type Profile struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	MiddleName  *string    `json:"middle_name,omitempty"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

var (
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidPassword    = errors.New("invalid_password")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrAccountLimit       = errors.New("account_limit_reached")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrSessionExpired     = errors.New("session_expired")
	ErrSessionRevoked     = errors.New("session_revoked")
	ErrNotFound           = errors.New("not_found")
)
