package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldobs/modisub/mcp"
	"github.com/fieldobs/modisub/modis"
)

var (
	// Root command
	rootCmd = &cobra.Command{
		Use:           "modisub",
		Short:         "Query the ORNL MODIS subset web service",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `modisub is a CLI tool for the ORNL DAAC MODIS/VIIRS land product
subset web service. It lists products, bands and observation dates, and
fetches subset data for a coordinate and kernel size, one band at a time
or across all bands of a product.

Results are printed to stdout as JSON.`,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about modisub",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("modisub version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command(func(ctx context.Context) (*modis.Client, error) {
		client, _, err := newClient(ctx)
		return client, err
	}))
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}
