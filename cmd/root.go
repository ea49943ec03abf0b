/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "favorites-tx",
	Short: "favorites-tx builds unsigned favorites program transactions",
	Long:  `favorites-tx serves an HTTP API that builds unsigned setFavorites transactions for client-side signing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "etc/etc.yaml", "config file")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

// initConfig loads .env and lets FAVORITES_CONFIG override the config path.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("favorites")
	viper.AutomaticEnv()
	if v := viper.GetString("config"); v != "" {
		cfgFile = v
	}
}
