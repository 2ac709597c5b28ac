package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/config"
	"github.com/msto63/textkit/core/i18n"
	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/convertx"
)

// ErrCheckFailed is returned when a classification reports invalid input.
// The verdict has already been printed, so Execute stays silent about it.
var ErrCheckFailed = errors.New("check failed")

// app carries the state shared by the subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool
	locale  string

	settings config.Settings
	logger   *log.Logger
	conv     *convertx.Converter
}

// NewRootCommand builds the textkit command tree
func NewRootCommand() *cobra.Command {
	a := &app{logger: log.Discard()}

	root := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - lenient text conversion and format checks",
		Long: `textkit converts free-form text into typed values without failing
and classifies text against format shapes.

Commands:
  convert  - Convert text to a typed value
  check    - Run one or all format checks
  json     - Validate or re-serialize JSON
  base64   - Encode or decode base64
  years    - Whole years between two dates`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: discovered textkit.toml/.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "Locale for date rendering (default: from config)")

	root.AddCommand(
		newConvertCmd(a),
		newCheckCmd(a),
		newJSONCmd(a),
		newBase64Cmd(),
		newYearsCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the textkit command line
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, ErrCheckFailed) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (a *app) setup(stderr io.Writer) error {
	settings, cfg, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(settings.Log.Format)
	if err != nil {
		return err
	}
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: stderr,
		Name:   "textkit",
	})

	if a.locale == "" {
		a.locale = settings.Format.Locale
	}
	a.conv = convertx.New(convertx.WithWhitespaceAsAbsent(settings.Convert.WhitespaceAsAbsent))

	a.logger.Debug("settings loaded", log.Fields{
		"config":               cfg.FilePath(),
		"locale":               i18n.NormalizeLocale(a.locale),
		"whitespace_as_absent": settings.Convert.WhitespaceAsAbsent,
	})
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
}
