// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keycalc/core/input"
	"github.com/toeirei/keycalc/internal/config"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/tui"
	"golang.org/x/term"
)

var appConfig config.Config

// logCloser releases the log file opened by setupDefaultServices.
var logCloser io.Closer

// extraCommands are added to every new root command. Optional front ends
// built behind tags register here.
var extraCommands []func() *cobra.Command

// stdinIsTerminal decides between the TUI and line mode.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runTUI starts the terminal UI. Tests replace it.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optional_config_path)
	// no config file is fine, the defaults are already decoded
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return errors.New(i18n.T("cli.error.config_load", err))
	}
	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	level := appConfig.Log.Level
	if appConfig.Debug {
		level = "debug"
	}
	// the TUI owns the terminal, logs go to the file or nowhere
	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd == cmd.Root() && stdinIsTerminal() {
		fallback = io.Discard
	}
	logCloser, err = logging.Setup(logging.Options{
		Level:      level,
		File:       appConfig.Log.File,
		MaxSizeMB:  appConfig.Log.MaxSizeMB,
		MaxBackups: appConfig.Log.MaxBackups,
		MaxAgeDays: appConfig.Log.MaxAgeDays,
		Compress:   appConfig.Log.Compress,
	}, fallback)
	if err != nil {
		return err
	}

	logging.Debugf("config loaded, language %s", appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// only an explicit --config counts
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// make sure the user-provided file exists to avoid silently using defaults
	if err := config.Stat(path); err != nil {
		return nil, errors.New(i18n.T("cli.error.config_flag", err))
	}
	return &path, nil
}

// applyDefaultFlags declares one persistent flag per overridable config key.
// Flag names match the config keys so viper can bind them directly.
func applyDefaultFlags(cmd *cobra.Command) {
	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	flags.Bool("debug", defaults["debug"].(bool), "show the debug pane and log at debug level")
	flags.String("log.level", defaults["log.level"].(string), "log level (debug, info, warn, error)")
	flags.String("log.file", defaults["log.file"].(string), "write logs to this rotating file")
	flags.Bool("display.glyphs", defaults["display.glyphs"].(bool), "show × ÷ √ instead of * / sqrt")
	flags.Bool("display.mouse", defaults["display.mouse"].(bool), "enable mouse clicks in the TUI")
	flags.String("keys.sqrt", defaults["keys.sqrt"].(string), "key that inserts sqrt(")
	flags.String("keys.toggle_sign", defaults["keys.toggle_sign"].(string), "key that toggles the sign")
}

func keyboard() input.Keyboard {
	return input.Keyboard{
		SqrtKey:       appConfig.Keys.Sqrt,
		ToggleSignKey: appConfig.Keys.ToggleSign,
	}
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "keycalc",
		Short:             i18n.T("app.short"),
		Long:              i18n.T("app.long"),
		Version:           compositeVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdinIsTerminal() {
				return runTUI(tui.Options{
					Keyboard: keyboard(),
					CopyKey:  appConfig.Keys.Copy,
					Glyphs:   appConfig.Display.Glyphs,
					Mouse:    appConfig.Display.Mouse,
					Debug:    appConfig.Debug,
				})
			}
			return runLineMode(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	applyDefaultFlags(cmd)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	cmd.AddCommand(
		newEvalCmd(),
		newPressCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	for _, newCmd := range extraCommands {
		cmd.AddCommand(newCmd())
	}

	return cmd
}
