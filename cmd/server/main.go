package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; the site itself runs under "serve"
var rootCmd = &cobra.Command{
	Use:          "vaporis-site",
	Short:        "Vaporis Records promo site",
	Long:         `Serves the Vaporis Records page and its teaser gallery backed by object storage.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
