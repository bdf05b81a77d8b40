package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/migration"
	"github.com/piadesu/attn-store/internal/observability"
	"github.com/piadesu/attn-store/internal/server"
	"github.com/piadesu/attn-store/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
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
