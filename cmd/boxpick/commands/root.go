package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"boxpick/internal/config"
	"boxpick/internal/domain"
	"boxpick/internal/logging"
)

// EnvE2E makes the UI print a ready marker for the end-to-end suite
const EnvE2E = "BOXPICK_E2E_TEST"

// Version is set at build time
var Version = "dev"

type rootOptions struct {
	configPath string
	policy     string
	logFile    string

	cfg       *config.Config
	configSvc config.ConfigService
	hasConfig bool
	logCloser io.Closer
}

// skipConfigLoad marks commands that must work while the config file is
// unreadable, such as the ones that rewrite it
const skipConfigLoad = "boxpick/skip-config-load"

// Execute runs the command line
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the boxpick command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "boxpick",
		Short:         "Select boxes A, B and C in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(!skipsConfigLoad(cmd))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logCloser != nil {
				_ = opts.logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.policy, "policy", "", `selection policy: "set" or "toggle" (overrides config)`)
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file (overrides config)")

	root.AddCommand(applyCmd(opts), configCmd(opts), versionCmd())
	return root
}

func skipsConfigLoad(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipConfigLoad]; ok {
			return true
		}
	}
	return false
}

// setup loads configuration, applies flag overrides and starts logging.
// Without load the defaults stand in for the file.
func (o *rootOptions) setup(load bool) error {
	o.configSvc = config.NewConfigService(o.configPath)

	if _, err := os.Stat(o.configSvc.Path()); err == nil {
		o.hasConfig = true
	}

	cfg := config.DefaultConfig()
	if load {
		loaded, err := o.configSvc.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if o.policy != "" {
		policy, err := domain.ParsePolicy(o.policy)
		if err != nil {
			return err
		}
		cfg.Policy = policy
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	o.cfg = cfg

	closer, err := logging.Configure(logging.ProfileRuntime, logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		// Keep going without a log file rather than refusing to start
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		closer, _ = logging.Configure(logging.ProfileRuntime, logging.Options{Level: "disabled"})
	}
	o.logCloser = closer

	log.Info().
		Str("config", o.configSvc.Path()).
		Stringer("policy", cfg.Policy).
		Msg("configuration loaded")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boxpick version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "boxpick %s\n", Version)
			return nil
		},
	}
}
