package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type RestoreCmd struct {
	flags *Flags
}

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(flags *Flags) *RestoreCmd {
	return &RestoreCmd{flags: flags}
}

// Register adds the restore command to the application
func (cmd *RestoreCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "restore",
		Usage:     "Switch back to the original wallpaper",
		UsageText: "todowall restore",
		Description: `Activates the backed-up original of the current wallpaper.

The annotated copy stays in the backup directory and is overwritten by the
next annotation run.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *RestoreCmd) run(ctx context.Context, c *cli.Command) error {
	annotator, err := cmd.flags.newAnnotator()
	if err != nil {
		return err
	}
	if _, err := annotator.Restore(ctx); err != nil {
		return fmt.Errorf("restore wallpaper: %w", err)
	}
	return nil
}
