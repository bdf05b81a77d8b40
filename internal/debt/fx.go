package debt

import (
	"github.com/piadesu/attn-store/internal/debt/repository"
	"github.com/piadesu/attn-store/internal/debt/service"
	"go.uber.org/fx"
)

var Module = fx.Module("debt.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
