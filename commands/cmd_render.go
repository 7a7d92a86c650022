package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/ByLCY/todowall/textblock"
	"github.com/ByLCY/todowall/theme"
)

type RenderCmd struct {
	flags *Flags

	in    string
	out   string
	theme string
	debug string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render items onto an image without touching the desktop",
		UsageText: "todowall render --in IMAGE --out IMAGE [--theme dark] [--todo TEXT]... [--done TEXT]...",
		Description: `Renders the items onto --in and writes the result to --out. The output
format follows the --out extension (jpg, png, gif, tif, bmp).

Use --debug to dump the computed layout (panel, scale, wrapped lines) as JSON.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Usage:       "source image",
				Required:    true,
				Destination: &cmd.in,
			},
			&cli.StringFlag{
				Name:        "out",
				Usage:       "output image",
				Required:    true,
				Destination: &cmd.out,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "light or dark",
				Value:       theme.Light.String(),
				Destination: &cmd.theme,
			},
			&cli.StringFlag{
				Name:        "debug",
				Usage:       "write the layout plan as JSON to this path",
				Destination: &cmd.debug,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	todos, dones, err := collectItems(c)
	if err != nil {
		return err
	}
	text, ok := textblock.Compose(todos, dones, cmd.flags.Config.Headings)
	if !ok {
		return errors.New("nothing to render: pass --todo, --done or --list")
	}

	if err := os.MkdirAll(filepath.Dir(cmd.out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	t := theme.Parse(cmd.theme)
	if err := cmd.flags.newRenderer(cmd.debug).Render(cmd.in, cmd.out, text, t); err != nil {
		return fmt.Errorf("render %s: %w", cmd.in, err)
	}
	cmd.flags.Logger.Info().Str("out", cmd.out).Str("theme", t.String()).Msg("rendered")
	return nil
}
