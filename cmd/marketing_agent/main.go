// Package main provides the entry point for the marketing-agent CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/api"
	"github.com/jonathan/marketing-agent/internal/config"
	"github.com/jonathan/marketing-agent/internal/logging"
	"github.com/jonathan/marketing-agent/internal/observability"
	"github.com/jonathan/marketing-agent/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "marketing_agent",
	Short: "Marketing Automation CLI",
	Long:  "Marketing Automation CLI drives the content-approval workflow, client onboarding, campaigns and analytics of the marketing backend.",
}

var (
	flagBackendURL string
	flagConfigPath string
	flagTimeout    int
	flagStrict     bool
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", "", "Backend base URL (default from config or BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Per-request timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Validate backend payloads against JSON schemas")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig assembles the effective configuration: flags override env, env
// overrides the config file, the config file overrides defaults.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if flagBackendURL != "" {
		cfg.BackendURL = flagBackendURL
	}
	if flagTimeout > 0 {
		cfg.RequestTimeout = flagTimeout
	}
	if flagStrict {
		cfg.Strict = true
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	merged := cfg.MergeWithDefaults(config.Config{
		BackendURL:   api.DefaultBaseURL,
		ClientFilter: types.AllClients,
	})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newBackendClient builds the API client from the effective configuration.
func newBackendClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logging.NewLoggerWithService("marketing_agent")
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	opts := []api.Option{
		api.WithTimeout(cfg.Timeout()),
		api.WithLogger(log),
	}
	if cfg.Strict {
		opts = append(opts, api.WithStrictValidation())
	}
	return api.NewClient(cfg.BackendURL, opts...), cfg, nil
}

func newPrinter() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// confirm asks a yes/no question and reports the answer. Anything other than
// y/yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
