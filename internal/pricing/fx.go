package pricing

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/pricing/service"
)

var Module = fx.Module("pricing.service",
	fx.Provide(service.New),
)
