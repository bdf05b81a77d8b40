package analytics

import (
	"github.com/piadesu/attn-store/internal/analytics/repository"
	"github.com/piadesu/attn-store/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
