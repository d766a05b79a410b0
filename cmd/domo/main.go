package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/domo-cli/cmd/domo/commands"
	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "domo",
	Short: "Domo platform API CLI",
	Long: `A command-line interface for the Domo platform API.

To get started, sign in at https://developer.domo.com and create a client.
Pass its id and secret with --clientid/--clientsecret or the
DOMO_API_CLIENT_ID/DOMO_API_CLIENT_SECRET environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.domo/config.yml)")
	flags.String("env-file", "", "load environment variables from this file (default ./.env, then $HOME/.domo/.env)")
	flags.String("host", constants.DefaultHost, "API host; change it for test, dev or demo lanes")
	flags.String("clientid", "", "public API client id")
	flags.String("clientsecret", "", "public API client secret")
	flags.String("editor", constants.DefaultEditor, "editor used to edit objects before they are sent")
	flags.StringP("template", "t", string(commands.DefaultOutputFormat), "output format (json, yaml, csv, debug, table)")
	flags.StringP("query", "q", "", "jq expression applied to structured output")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses to stderr")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP request timeout")

	// Bind flags to viper
	for _, name := range []string{"config", "host", "clientid", "clientsecret", "editor", "template", "query", "verbose", "timeout"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	_ = viper.BindEnv("host", constants.EnvHost)
	_ = viper.BindEnv("clientid", constants.EnvClientID)
	_ = viper.BindEnv("clientsecret", constants.EnvClientSecret)
	_ = viper.BindEnv("editor", constants.EnvEditor)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewActivityCommand())
	rootCmd.AddCommand(commands.NewBuzzCommand())
	rootCmd.AddCommand(commands.NewDataSetsCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())
	rootCmd.AddCommand(commands.NewPagesCommand())
	rootCmd.AddCommand(commands.NewStreamsCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewWebhooksCommand())
	rootCmd.AddCommand(commands.NewWorkflowCommand())
}

func initConfig() {
	err := loadEnvFiles(rootCmd.PersistentFlags().Lookup("env-file").Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in ~/.domo/config.yml
			viper.AddConfigPath(filepath.Join(home, ".domo"))
			viper.SetConfigType("yml")
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error: reading config file: %v\n", err)
		os.Exit(1)
	}
}

// loadEnvFiles loads path when given. Otherwise the first of ./.env and
// ~/.domo/.env that exists is loaded. Variables already set are kept.
func loadEnvFiles(path string) error {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}

		return nil
	}

	candidates := []string{".env"}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".domo", ".env"))
	}

	for _, candidate := range candidates {
		err := godotenv.Load(candidate)
		if err == nil {
			return nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading env file %s: %w", candidate, err)
		}
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		if viper.GetString("template") == string(commands.FormatDebug) {
			commands.DumpError(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
