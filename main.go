// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"candleview/config"
	"candleview/initapp"
	"context"
	"flag"
	"os"
	"os/signal"
	_ "time/tzdata"

	"gioui.org/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	snapshotFile := flag.String("snapshot", "", "render the chart into a png file and exit")
	exportFile := flag.String("export", "", "store the loaded bars in a parquet file and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	// A missing .env file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := initapp.NewInitApp(config.NewGlobalConfig())
	if err := a.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("initialization failed")
	}
	if len(*exportFile) > 0 {
		if err := a.Export(ctx, *exportFile); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
	}
	if len(*snapshotFile) > 0 {
		if err := a.Snapshot(ctx, *snapshotFile); err != nil {
			log.Fatal().Err(err).Msg("snapshot failed")
		}
	}
	if len(*exportFile) > 0 || len(*snapshotFile) > 0 {
		return
	}

	go func() {
		if err := a.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("terminating")
		}
		os.Exit(0)
	}()
	app.Main()
}
