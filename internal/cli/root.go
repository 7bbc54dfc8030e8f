package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	binarycodec "github.com/nemtech/nem2-e2e-tests/internal/codec/binary-codec"
	"github.com/nemtech/nem2-e2e-tests/internal/config"
)

// Version is the release version of the tool.
var Version = "0.1.0-dev"

// app carries global flags and the state built from them before a subcommand runs.
type app struct {
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	cfg   *config.Config
	log   zerolog.Logger
	codec *binarycodec.BinarySerialization
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "nem2codec",
		Short: "Encode, decode, sign and hash NEM2 transactions",
		Long: `nem2codec converts NEM2 (Catapult) transactions between their binary wire
format and JSON, signs and hashes payloads, and frames them into push
transactions packets for announcing to a node.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newDecodeCmd(a),
		newEncodeCmd(a),
		newHashCmd(a),
		newBatchCmd(a),
		newAddressCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init loads configuration and builds the logger and codec.
func (a *app) init(logOut io.Writer) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	switch {
	case a.debug:
		level = zerolog.DebugLevel
	case a.verbose:
		level = zerolog.InfoLevel
	case a.quiet:
		level = zerolog.ErrorLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: logOut, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	a.codec = binarycodec.New(binarycodec.WithLogger(a.log))
	a.log.Debug().
		Str("config", cfg.GetConfigPath()).
		Str("settings", cfg.String()).
		Int("transaction_types", a.codec.Count()).
		Msg("initialized")
	return nil
}

func (a *app) component(name string) zerolog.Logger {
	return a.log.With().Str("component", name).Logger()
}
