package catalog

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/catalog/repository"
	"github.com/shushruth21/estre/internal/catalog/service"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
