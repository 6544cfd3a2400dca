package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/shushruth21/estre/internal/clock"
	"github.com/shushruth21/estre/internal/config"
	"github.com/shushruth21/estre/internal/migration"
	"github.com/shushruth21/estre/internal/observability"
	"github.com/shushruth21/estre/internal/seed"
	"github.com/shushruth21/estre/internal/server"
	"github.com/shushruth21/estre/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and demo data, before the HTTP surface comes up
		migration.Module,
		seed.Module,

		// HTTP server plus every domain module it serves
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
