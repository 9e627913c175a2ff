package cmd

import (
	"strings"

	"github.com/Iron-Ham/cookieshell/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cookieshell",
	Short: "A playful cookie-themed command shell",
	Long: `Cookie Shell is a tiny make-believe shell. Every command starts with
"cookie": bake treats, crack open fortunes, bonk your friends, wander
into the evil cookie jar or play a guessing game.

Run without a subcommand to open the terminal console, or use
"cookieshell serve" to offer the same console to browsers over WebSocket.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConsole,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/cookieshell/config.yaml)")
	rootCmd.Flags().BoolVar(&runPlain, "plain", false, "Use the line-based console even on a terminal")
}

// bindFlags ties command-line flags to their viper keys. It runs from
// initConfig so every subcommand's flags exist by then.
func bindFlags() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func initConfig() {
	bindFlags()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/" + config.AppName)
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// e.g., COOKIESHELL_SHELL_BAKE_DELAY for shell.bake_delay
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
