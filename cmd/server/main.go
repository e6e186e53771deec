package main

import (
	"github.com/polygraph-app/backend/internal/server"
	"github.com/polygraph-app/backend/internal/util"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.New(console.Params{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
