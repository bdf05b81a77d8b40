package catalog

import (
	"github.com/piadesu/attn-store/internal/catalog/repository"
	"github.com/piadesu/attn-store/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.ProvideCategory),
	fx.Provide(repository.ProvideProduct),
	fx.Provide(service.New),
)
