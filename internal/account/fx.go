package account

import (
	"github.com/piadesu/attn-store/internal/account/repository"
	"github.com/piadesu/attn-store/internal/account/service"
	"github.com/piadesu/attn-store/internal/account/session"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideSession),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
