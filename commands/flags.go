package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/ByLCY/todowall/annotate"
	"github.com/ByLCY/todowall/config"
	"github.com/ByLCY/todowall/desktop"
	"github.com/ByLCY/todowall/executil"
	"github.com/ByLCY/todowall/logging"
	canvasrenderer "github.com/ByLCY/todowall/renderer/canvas"
	"github.com/ByLCY/todowall/wallpaper"
)

// Flags holds global flag values plus the state built from them in the
// Before hook.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	BackupDir  string
	Marker     string
	Font       string
	Desktop    string
	Brightness int
	Blur       float64

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
	Logger zerolog.Logger
	Exec   executil.Executor
}

func (f *Flags) globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TODOWALL_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write JSON logs to this file instead of stderr",
			Sources:     cli.EnvVars("TODOWALL_LOG_FILE"),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file (.yaml or .toml)",
			Sources:     cli.EnvVars("TODOWALL_CONFIG"),
			Value:       config.DefaultPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "backup-dir",
			Usage:       "directory holding original and annotated wallpapers",
			Sources:     cli.EnvVars("TODOWALL_BACKUP_DIR"),
			Destination: &f.BackupDir,
		},
		&cli.StringFlag{
			Name:        "marker",
			Usage:       "filename marker of annotated wallpapers",
			Sources:     cli.EnvVars("TODOWALL_MARKER"),
			Destination: &f.Marker,
		},
		&cli.StringFlag{
			Name:        "font",
			Usage:       "font file or builtin (embed:go-regular, embed:go-medium, embed:go-bold, embed:go-mono)",
			Sources:     cli.EnvVars("TODOWALL_FONT"),
			Destination: &f.Font,
		},
		&cli.StringFlag{
			Name:        "desktop",
			Usage:       "desktop environment (defaults to $XDG_CURRENT_DESKTOP)",
			Sources:     cli.EnvVars("TODOWALL_DESKTOP"),
			Destination: &f.Desktop,
		},
		&cli.IntFlag{
			Name:        "brightness",
			Usage:       "panel brightness shift (0-255)",
			Sources:     cli.EnvVars("TODOWALL_BRIGHTNESS"),
			Destination: &f.Brightness,
		},
		&cli.FloatFlag{
			Name:        "blur",
			Usage:       "panel blur sigma in pixels",
			Sources:     cli.EnvVars("TODOWALL_BLUR"),
			Destination: &f.Blur,
		},
	}
}

// setup builds the logger and the effective config. Flags and environment
// variables override the config file.
func (f *Flags) setup(c *cli.Command) (func(), error) {
	logger, closer, err := logging.New(f.LogLevel, f.LogFile)
	if err != nil {
		return closer, fmt.Errorf("setup logger: %w", err)
	}
	f.Logger = logger

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return closer, fmt.Errorf("load config: %w", err)
	}
	if f.BackupDir != "" {
		cfg.BackupDir = f.BackupDir
	}
	if f.Marker != "" {
		cfg.Marker = f.Marker
	}
	if f.Font != "" {
		cfg.Font = f.Font
	}
	if f.Desktop != "" {
		cfg.Desktop = f.Desktop
	}
	if c.IsSet("brightness") {
		cfg.Render.Brightness = f.Brightness
	}
	if c.IsSet("blur") {
		cfg.Render.Blur = f.Blur
	}
	if err := cfg.Finalize(); err != nil {
		return closer, err
	}
	f.Config = cfg

	if f.Exec == nil {
		f.Exec = &executil.RealExecutor{}
	}
	f.Logger.Debug().
		Str("config", f.ConfigPath).
		Str("backup_dir", cfg.BackupDir).
		Str("marker", cfg.Marker).
		Str("font", cfg.Font).
		Msg("configuration loaded")
	return closer, nil
}

func (f *Flags) component(name string) zerolog.Logger {
	return f.Logger.With().Str("component", name).Logger()
}

func (f *Flags) newRenderer(debugPath string) *canvasrenderer.Renderer {
	opts := canvasrenderer.DefaultOptions()
	opts.FontSrc = f.Config.Font
	opts.Brightness = f.Config.Render.Brightness
	opts.BlurSigma = f.Config.Render.Blur
	opts.DebugPath = debugPath
	return canvasrenderer.NewRenderer(opts, f.component("renderer"))
}

func (f *Flags) newAnnotator() (*annotate.Annotator, error) {
	name := f.Config.Desktop
	if name == "" {
		name = os.Getenv("XDG_CURRENT_DESKTOP")
	}
	env, err := desktop.Detect(name, f.Exec)
	if err != nil {
		return nil, err
	}
	resolver := wallpaper.NewResolver(f.Config.BackupDir, f.Config.Marker, f.component("wallpaper"))
	return annotate.New(env, resolver, f.newRenderer(""), f.Config.Headings, f.Logger), nil
}
