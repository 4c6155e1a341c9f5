package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/sitenav-go/internal/builder"
	"github.com/quantmind-br/sitenav-go/internal/config"
	"github.com/quantmind-br/sitenav-go/internal/utils"
	"github.com/quantmind-br/sitenav-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sitenav",
	Short: "Generate a navigation manifest from HTML content directories",
	Long: `Sitenav scans configured directories of HTML fragment files, extracts a
heading and a description from each, and writes a single ordered JSON
manifest describing the site's collections and their files.

The manifest is regenerated from scratch on every run, so navigation and
listing UIs can be generated from content files instead of being
hand-maintained.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sitenav.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", config.DefaultRoot, "Project root directory")
	rootCmd.PersistentFlags().StringP("site-config", "s", config.DefaultSiteConfig, "Site configuration path (relative to root)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultManifest, "Manifest output path (relative to root)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "Disable the progress bar")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Assemble without writing the manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("paths.root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("paths.site_config", rootCmd.PersistentFlags().Lookup("site-config"))
	_ = viper.BindPFlag("paths.manifest", rootCmd.PersistentFlags().Lookup("output"))

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	b, err := builder.New(builder.Options{
		RootDir:      cfg.Paths.Root,
		ConfigPath:   cfg.Paths.SiteConfig,
		OutputPath:   cfg.Paths.Manifest,
		DryRun:       dryRun,
		ShowProgress: cfg.Output.Progress && !noProgress,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to create builder: %w", err)
	}

	return b.Run(ctx)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site configuration and content directories",
	Long: `Loads the site configuration, verifies that every configured directory
exists and lists its content files. Nothing is written; explicitly ordered
filenames missing from disk are reported at debug level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: verbose,
		})

		b, err := builder.New(builder.Options{
			RootDir:    cfg.Paths.Root,
			ConfigPath: cfg.Paths.SiteConfig,
			OutputPath: cfg.Paths.Manifest,
			DryRun:     true,
			Logger:     log,
		})
		if err != nil {
			return fmt.Errorf("failed to create builder: %w", err)
		}

		if err := b.Validate(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Configuration OK")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
