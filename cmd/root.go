package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytdata-go/ytdata/config"
	"github.com/ytdata-go/ytdata/youtube"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *youtube.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	maxResults int64
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ytdata",
	Short: "Query the YouTube Data API from the command line",
	Long: `ytdata is a CLI tool for the YouTube Data API v3. It searches for
videos and channels, looks up video statistics and charts, and filters
results with expressions like 'ViewCount > 100000'.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata stamped in by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []youtube.Option{}
	if cfg.YouTube.BaseURL != "" {
		opts = append(opts, youtube.WithBaseURL(cfg.YouTube.BaseURL))
	}
	if cfg.YouTube.UserAgent != "" {
		opts = append(opts, youtube.WithUserAgent(cfg.YouTube.UserAgent))
	}
	if cfg.YouTube.Timeout > 0 {
		opts = append(opts, youtube.WithTimeout(time.Duration(cfg.YouTube.Timeout)*time.Second))
	}

	client, err = youtube.NewClient(cfg.YouTube.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only on a real terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use. An empty
// result means no post-filtering.
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}
