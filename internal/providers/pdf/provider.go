package pdf

import "go.uber.org/fx"

// Provider renders documents the back office hands to customers.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

var Module = fx.Module("providers.pdf",
	fx.Provide(NewProvider),
)
