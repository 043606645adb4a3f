/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "campaignion",
	Short: "Tactical combat resolution for virtual tabletops",
	Long: `campaignion is the combat engine behind a 5e virtual tabletop:
grid geometry, dice, movement validation, area templates, and
initiative sequencing.

Use 'roll' to exercise the dice engine directly and 'skirmish' to run
a validated encounter from content files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.campaignion.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSlice("data_dir", nil, "content directory (repeatable; searched in order)")
	_ = viper.BindPFlag("data_dirs", rootCmd.PersistentFlags().Lookup("data_dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".campaignion")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// dataDirs resolves the content search path from flags/config, falling
// back to ./data.
func dataDirs() []string {
	dirs := viper.GetStringSlice("data_dirs")
	if len(dirs) == 0 {
		dirs = []string{"data"}
	}
	return dirs
}
