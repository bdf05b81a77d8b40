package order

import (
	"github.com/piadesu/attn-store/internal/order/repository"
	"github.com/piadesu/attn-store/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
