package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ByLCY/todowall/dsl"
)

type AnnotateCmd struct {
	flags *Flags
}

// NewAnnotateCmd creates the default (root) action.
func NewAnnotateCmd(flags *Flags) *AnnotateCmd {
	return &AnnotateCmd{flags: flags}
}

// Flags returns the item flags. They are registered on the root command and
// inherited by render.
func (cmd *AnnotateCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "todo",
			Aliases: []string{"t"},
			Usage:   "todo item (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:    "done",
			Aliases: []string{"d"},
			Usage:   "done item (repeatable)",
		},
		&cli.StringFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "todo list file with todo \"...\" / done \"...\" lines",
			Sources: cli.EnvVars("TODOWALL_LIST"),
		},
	}
}

func (cmd *AnnotateCmd) Run(ctx context.Context, c *cli.Command) error {
	todos, dones, err := collectItems(c)
	if err != nil {
		return err
	}
	if len(todos) == 0 && len(dones) == 0 {
		cmd.flags.Logger.Info().Msg("no todo or done items given, wallpaper left unchanged")
		return nil
	}

	annotator, err := cmd.flags.newAnnotator()
	if err != nil {
		return err
	}
	res, err := annotator.Run(ctx, todos, dones)
	if err != nil {
		return fmt.Errorf("annotate wallpaper (stage %s): %w", res.Stage, err)
	}
	return nil
}

// collectItems reads items from --list first, then appends --todo/--done.
func collectItems(c *cli.Command) (todos, dones []string, err error) {
	if path := c.String("list"); path != "" {
		list, err := dsl.ParseFile(path)
		if err != nil {
			return nil, nil, err
		}
		todos, dones = list.Lists()
	}
	todos = append(todos, c.StringSlice("todo")...)
	dones = append(dones, c.StringSlice("done")...)
	return todos, dones, nil
}
