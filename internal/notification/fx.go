package notification

import (
	"github.com/piadesu/attn-store/internal/notification/domain"
	"github.com/piadesu/attn-store/internal/notification/repository"
	"github.com/piadesu/attn-store/internal/notification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(s *service.Service) domain.Service { return s }),
	fx.Provide(func(s *service.Service) domain.Recorder { return s }),
)
