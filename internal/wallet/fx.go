package wallet

import (
	"github.com/piadesu/attn-store/internal/wallet/repository"
	"github.com/piadesu/attn-store/internal/wallet/service"
	"go.uber.org/fx"
)

var Module = fx.Module("wallet.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
