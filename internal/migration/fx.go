package migration

import (
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
	catalogdomain "github.com/piadesu/attn-store/internal/catalog/domain"
	"github.com/piadesu/attn-store/internal/config"
	debtdomain "github.com/piadesu/attn-store/internal/debt/domain"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	orderdomain "github.com/piadesu/attn-store/internal/order/domain"
	"github.com/piadesu/attn-store/internal/seed"
	walletdomain "github.com/piadesu/attn-store/internal/wallet/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql deployments are single-node dev setups,
			// the model-derived schema is enough there.
			if err := conn.AutoMigrate(
				&catalogdomain.Category{},
				&catalogdomain.Product{},
				&orderdomain.Order{},
				&orderdomain.OrderedItem{},
				&walletdomain.WalletEntry{},
				&debtdomain.DebtPayment{},
				&accountdomain.Account{},
				&accountdomain.Session{},
				&notificationdomain.Notification{},
			); err != nil {
				return err
			}
		}

		if cfg.BootstrapAdmin {
			return seed.EnsureAdminAccount(conn)
		}
		return nil
	}),
)
