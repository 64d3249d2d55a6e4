package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List available products",
	Long:  "List the land products the subset web service can serve, with their descriptions and resolutions.",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

var bandsCmd = &cobra.Command{
	Use:   "bands PRODUCT",
	Short: "List available bands for a product",
	Long:  "List the bands of a product, e.g. modisub bands MYD09A1.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBands,
}

var (
	datesLatitude  float64
	datesLongitude float64

	datesCmd = &cobra.Command{
		Use:   "dates PRODUCT",
		Short: "List available observation dates for a product at a location",
		Args:  cobra.ExactArgs(1),
		RunE:  runDates,
	}
)

func init() {
	datesCmd.Flags().Float64Var(&datesLatitude, "latitude", 0, "centre latitude of the query area")
	datesCmd.Flags().Float64Var(&datesLongitude, "longitude", 0, "centre longitude of the query area")
	_ = datesCmd.MarkFlagRequired("latitude")
	_ = datesCmd.MarkFlagRequired("longitude")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(datesCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	doc, err := client.Products(cmd.Context())
	if err != nil {
		return err
	}
	return printDocument(os.Stdout, doc)
}

func runBands(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	doc, err := client.Bands(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printDocument(os.Stdout, doc)
}

func runDates(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	doc, err := client.Dates(cmd.Context(), args[0], datesLongitude, datesLatitude)
	if err != nil {
		return err
	}
	return printDocument(os.Stdout, doc)
}
