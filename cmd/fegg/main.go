package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frontegg-community/frontegg-go/cmd/fegg/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fegg",
	Short: "Frontegg vendor API CLI",
	Long: `A command-line interface for the Frontegg identity and tenant
management API. It authenticates with vendor credentials and manages
tenants, users, roles, and permissions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.frontegg/config.yml)")
	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "vendor API endpoint URL")
	rootCmd.PersistentFlags().String("client-id", "", "vendor client ID")
	rootCmd.PersistentFlags().String("secret-key", "", "vendor secret key (prompted when omitted)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("cache", "none", "lookup cache backend (none, memory, nats)")
	rootCmd.PersistentFlags().Duration("cache-ttl", 5*time.Minute, "lookup cache entry TTL")
	rootCmd.PersistentFlags().String("cache-nats-url", "", "NATS server URL for the nats cache backend")
	rootCmd.PersistentFlags().String("cache-nats-bucket", "fegg-cache", "NATS KV bucket for the nats cache backend")

	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("client-id", rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag("secret-key", rootCmd.PersistentFlags().Lookup("secret-key"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("cache.type", rootCmd.PersistentFlags().Lookup("cache"))
	_ = viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))
	_ = viper.BindPFlag("cache.nats.url", rootCmd.PersistentFlags().Lookup("cache-nats-url"))
	_ = viper.BindPFlag("cache.nats.bucket", rootCmd.PersistentFlags().Lookup("cache-nats-bucket"))

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewTenantsCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewRolesCommand())
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".frontegg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yml")
		}
	}

	viper.SetEnvPrefix("FRONTEGG")
	viper.AutomaticEnv()

	// Missing config files are fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
