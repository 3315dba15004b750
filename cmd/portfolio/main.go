package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile     string
	contentFile string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A single-page personal portfolio server",
	Long: `portfolio serves a personal portfolio page: hero banner, about text,
skills, project cards with an image lightbox, and contact links.

Configuration is read from a YAML file and PORTFOLIO_* environment
variables (a .env file in the working directory is loaded first).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "YAML file with profile and projects (default: built-in content)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
