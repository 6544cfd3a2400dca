package jobcard

import (
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/jobcard/render"
	"github.com/shushruth21/estre/internal/jobcard/repository"
	"github.com/shushruth21/estre/internal/jobcard/service"
)

var Module = fx.Module("jobcard.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
	fx.Provide(render.New),
)
