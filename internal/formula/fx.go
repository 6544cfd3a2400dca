package formula

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/formula/repository"
	"github.com/shushruth21/estre/internal/formula/service"
)

var Module = fx.Module("formula.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewSetCache),
	fx.Provide(service.NewService),
)
