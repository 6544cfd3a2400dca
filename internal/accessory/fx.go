package accessory

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/accessory/repository"
	"github.com/shushruth21/estre/internal/accessory/service"
)

var Module = fx.Module("accessory.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
