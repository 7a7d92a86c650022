// Package commands wires the todowall command line.
package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command. Running it without a subcommand annotates
// the active wallpaper.
func NewApp(flags *Flags, version string) *cli.Command {
	var logCloser func()
	annotateCmd := NewAnnotateCmd(flags)

	app := &cli.Command{
		Name:      "todowall",
		Usage:     "Write your todo list onto the desktop wallpaper",
		UsageText: "todowall [global options] [--todo TEXT]... [--done TEXT]... [--list FILE] [command]",
		Description: `todowall renders todo and done items onto the right-hand side of the
current wallpaper and switches the desktop to the annotated copy.

The untouched original is kept in the backup directory; run 'todowall restore'
to switch back to it. 'todowall render' works on any image without touching
the desktop.`,
		Version: version,
		Flags:   flags.globalFlags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closer, err := flags.setup(c)
			logCloser = closer
			return ctx, err
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = NewRestoreCmd(flags).Register(app)
	app = NewRenderCmd(flags).Register(app)

	app.Flags = append(app.Flags, annotateCmd.Flags()...)
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todowall --help' for usage", c.Args().First())
		}
		return annotateCmd.Run(ctx, c)
	}
	return app
}
