package cli

import (
	"fmt"

	"github.com/islandu/pcset/internal/config"
	"github.com/islandu/pcset/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// application carries what every subcommand needs once flags are parsed
type application struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the pcset command tree
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	return newRootCommand(&application{log: zap.NewNop()}, version, commit, buildDate)
}

// Execute runs the command tree with args and returns the process exit code.
// Failures are logged with the logger configured by --debug / PCSET_DEBUG,
// or an info level one when the command failed before configuration.
func Execute(args []string, version, commit, buildDate string) int {
	app := &application{log: zap.NewNop()}
	rootCmd := newRootCommand(app, version, commit, buildDate)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	log := app.log
	if app.cfg == nil {
		log = logger.NewLogger(false)
	}
	log.Error("command failed", zap.Error(err))
	_ = log.Sync()

	return 1
}

func newRootCommand(app *application, version, commit, buildDate string) *cobra.Command {
	var cfgFile string

	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pcset",
		Short: "Pitch-class set analysis",
		Long: `pcset computes normal order, prime form and interval-class vectors of
pitch-class sets, and lists the set classes of the twelve-tone system.

Pitch classes are integers; any integer is reduced modulo 12.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			app.cfg = cfg
			app.log = logger.NewLogger(cfg.Debug)
			app.log.Debug("configuration loaded",
				zap.Bool("debug", cfg.Debug),
				zap.Int("concurrency", cfg.Concurrency),
				zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Int("concurrency", config.Default().Concurrency, "workers used to build the set-class catalog")
	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("concurrency", flags.Lookup("concurrency"))

	rootCmd.AddCommand(
		newDemoCommand(app),
		newAnalyzeCommand(app),
		newCatalogCommand(app),
	)

	return rootCmd
}
