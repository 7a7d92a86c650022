package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/ByLCY/todowall/commands"
	"github.com/ByLCY/todowall/executil"
)

// Populated at build-time via -ldflags.
var version = "dev"

func buildVersion() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	flags := &commands.Flags{
		Exec:   &executil.RealExecutor{},
		Logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}

	app := commands.NewApp(flags, buildVersion())
	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		flags.Logger.Error().Err(err).Msg("todowall failed")
		os.Exit(1)
	}
}
