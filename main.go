// CipherRiot - classical substitution cipher toolkit
//
// Pipeline (encode order; decode runs it backwards):
// - Normalize: ASCII letters are upper-cased, everything else passes through
// - Substitute: caesar, atbash, affine or keyword, one letter at a time
// - Pad (optional): each rune shifts the next pad digit, letters only change
// - Blocks (optional): whitespace becomes a random decoy symbol, the text is
//   filled to a multiple of 5 and printed in groups of 5
//
// Notes:
// - Keys come from flags, the YAML config file, the environment or a hidden
//   terminal prompt (--prompt-keyword, --prompt-pad, --pad-passphrase)
// - Block mode cannot keep trailing spaces or literal decoy symbols; they
//   decode as spaces and trailing spaces are dropped
// - Message text and key material are never logged

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cipherriot/internal"
	"cipherriot/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var version = "dev"

// errSelfTestFailed makes the process exit with status 1 instead of 2.
var errSelfTestFailed = errors.New("self-test failed")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath string
	verbose bool
	noColor bool

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cipherriot",
		Short: "CipherRiot - classical substitution ciphers with pads and blocks",
		Long: `CipherRiot encodes and decodes messages with the Caesar, Atbash, Affine and
Keyword ciphers, optionally followed by a numeric pad and block grouping.

Messages are read from the arguments, or from stdin when no arguments are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			internal.SetColorEnabled(!a.noColor && term.IsTerminal(int(syscall.Stdout)))

			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger.With(zap.String("session", uuid.NewString()))

			path := a.configPath()
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger.Debug("starting",
				zap.String("command", cmd.Name()),
				zap.String("config", path),
				zap.String("version", version),
				zap.Bool("color", internal.ColorEnabled()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (default: user config dir/cipherriot/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output (TTY-safe)")

	root.AddCommand(
		a.newTranscodeCmd(internal.ModeEncode),
		a.newTranscodeCmd(internal.ModeDecode),
		a.newRunCmd(),
		a.newTableCmd(),
		a.newCiphersCmd(),
		a.newSelfTestCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// exitCode maps a command error to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errSelfTestFailed):
		return 1
	}
	return 2
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, errSelfTestFailed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
