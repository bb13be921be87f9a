package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/config"
	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/catalogsrv/server"
	"github.com/articod/articod/internal/common/logtrace"
)

func main() {
	logtrace.InitLogger()

	configFile := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	if err := config.LoadConfig(*configFile); err != nil {
		log.Error().Err(err).Msg("unable to load config")
		os.Exit(1)
	}

	if err := db.Init(); err != nil {
		log.Error().Err(err).Msg("unable to initialize database pool")
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
