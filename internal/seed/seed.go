package seed

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
	"github.com/piadesu/attn-store/internal/account/password"
	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "changeme123"
)

// EnsureAdminAccount seeds a back-office login for first boot so the
// owner can sign in before any account exists.
func EnsureAdminAccount(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	username := strings.ToLower(strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_USERNAME")))
	if username == "" {
		username = defaultAdminUsername
	}
	pass := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if strings.TrimSpace(pass) == "" {
		pass = defaultAdminPassword
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&accountdomain.Account{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := password.Hash(pass)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		account := accountdomain.Account{
			ID:           node.Generate().Int64(),
			Username:     username,
			PasswordHash: hashed,
			FirstName:    "Store",
			LastName:     "Owner",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.WithContext(ctx).Create(&account).Error
	})
}
