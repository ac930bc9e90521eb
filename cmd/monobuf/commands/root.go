package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BeatGlow/monobuf"
)

// Version of the monobuf command.
const Version = "0.1.0"

// app is the state shared by the commands of one command tree.
type app struct {
	v      *viper.Viper
	cfg    Config
	logger *slog.Logger
}

// NewRootCommand returns the monobuf command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "monobuf",
		Short: "Render and convert 1-bit framebuffer images",
		Long: `Monobuf renders into a 1-bit monochrome framebuffer and writes the result as
raw packed bytes (8 pixels per byte, most significant bit left), as PNG or as a
text preview.

Settings are read from flags, from MONOBUF_* environment variables and from an
optional YAML config file, in that order of precedence.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(a.v, &a.cfg); err != nil {
				return err
			}
			level := slog.LevelInfo
			if a.cfg.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			monobuf.SetLogger(a.logger)
			return nil
		},
	}

	defaults := DefaultConfig()
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (YAML)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Int("width", defaults.Width, "buffer width in pixels, a multiple of 8")
	flags.Int("height", defaults.Height, "buffer height in pixels")
	flags.StringP("format", "f", defaults.Format, "output format: raw, png or text")
	flags.String("style", defaults.Style, "text preview style: block, braille or ascii")
	flags.StringP("output", "o", defaults.Output, "output file, - for stdout")
	a.bind(flags, "config", "verbose", "width", "height", "format", "style", "output")

	root.AddCommand(
		a.renderCommand(),
		a.convertCommand(),
	)
	return root
}

// bind binds the named flags to the viper keys of the same name.
func (a *app) bind(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		a.bindKey(name, flags, name)
	}
}

func (a *app) bindKey(key string, flags *pflag.FlagSet, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}
