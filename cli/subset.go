package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldobs/modisub/modis"
)

var (
	subsetBand          string
	subsetLatitude      float64
	subsetLongitude     float64
	subsetStartDate     string
	subsetEndDate       string
	subsetKmAboveBelow  float64
	subsetKmLeftRight   float64
	subsetSiteID        optionalStringFlag
	subsetNetwork       optionalStringFlag
	subsetNetworkSiteID optionalStringFlag
	subsetEmail         optionalStringFlag
	subsetUID           optionalStringFlag

	subsetCmd = &cobra.Command{
		Use:   "subset PRODUCT",
		Short: "Fetch subset data for a product",
		Long: `Fetch subset data for a product around a coordinate.

With --band the subset for that single band is printed. Without it every
band of the product is fetched in turn and the output is a JSON object
keyed by band name.`,
		Args: cobra.ExactArgs(1),
		RunE: runSubset,
	}
)

func init() {
	f := subsetCmd.Flags()
	f.StringVarP(&subsetBand, "band", "b", modis.AllBands, `band name, or "all" for every band`)
	f.Float64Var(&subsetLatitude, "latitude", 0, "centre latitude of the query area")
	f.Float64Var(&subsetLongitude, "longitude", 0, "centre longitude of the query area")
	f.StringVar(&subsetStartDate, "start-date", "", "first MODIS date code, e.g. A2003101")
	f.StringVar(&subsetEndDate, "end-date", "", "last MODIS date code, e.g. A2003111")
	f.Float64Var(&subsetKmAboveBelow, "km-above-below", 0, "kernel size above/below the centre, km")
	f.Float64Var(&subsetKmLeftRight, "km-left-right", 0, "kernel size left/right of the centre, km")
	f.Var(&subsetSiteID, "siteid", "pre-registered site identifier")
	f.Var(&subsetNetwork, "network", "site network name")
	f.Var(&subsetNetworkSiteID, "network-siteid", "site identifier within the network")
	f.Var(&subsetEmail, "email", "email the result to this address")
	f.Var(&subsetUID, "uid", "order number for later retrieval")

	for _, name := range []string{"latitude", "longitude", "start-date", "end-date", "km-above-below", "km-left-right"} {
		_ = subsetCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(subsetCmd)
}

// buildSearchParams assembles the search term mapping from flags and
// configuration, leaving out optional terms that were supplied nowhere
func buildSearchParams(product string, cfg *Config) modis.SearchParams {
	params := modis.SearchParams{
		"product":      product,
		"band":         subsetBand,
		"latitude":     subsetLatitude,
		"longitude":    subsetLongitude,
		"startDate":    subsetStartDate,
		"endDate":      subsetEndDate,
		"kmAboveBelow": subsetKmAboveBelow,
		"kmLeftRight":  subsetKmLeftRight,
	}

	if subsetSiteID.IsSet {
		params["siteid"] = subsetSiteID.Value
	}
	if subsetNetwork.IsSet {
		params["network"] = subsetNetwork.Value
	}
	if subsetNetworkSiteID.IsSet {
		params["network_siteid"] = subsetNetworkSiteID.Value
	}

	// Flags win over the environment for the delivery terms
	email := cfg.Email
	if subsetEmail.IsSet {
		email = subsetEmail.Value
	}
	if email != "" {
		params["email"] = email
	}
	uid := cfg.UID
	if subsetUID.IsSet {
		uid = subsetUID.Value
	}
	if uid != "" {
		params["uid"] = uid
	}

	return params
}

func runSubset(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	doc, err := client.FetchSubset(cmd.Context(), buildSearchParams(args[0], cfg))
	if err != nil {
		return err
	}
	return printDocument(os.Stdout, doc)
}
