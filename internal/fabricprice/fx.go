package fabricprice

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/fabricprice/repository"
	"github.com/shushruth21/estre/internal/fabricprice/service"
)

var Module = fx.Module("fabricprice.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
