package qir

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/qir/repository"
	"github.com/shushruth21/estre/internal/qir/service"
)

var Module = fx.Module("qir.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
