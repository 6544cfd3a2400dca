package order

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/order/repository"
	"github.com/shushruth21/estre/internal/order/service"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
)
