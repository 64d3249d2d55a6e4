package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// orderDataURL is where the service publishes finished subset orders
const orderDataURL = "https://modis.ornl.gov/subsetdata/"

var orderCmd = &cobra.Command{
	Use:   "order UID",
	Short: "Open a finished subset order in the browser",
	Long:  "Open the download page for a subset order that was placed with a uid search term.",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	uid := strings.TrimSpace(args[0])
	if uid == "" {
		return failure.New(InvalidOrderID,
			failure.Message("order uid must not be empty"),
		)
	}

	u := orderDataURL + url.PathEscape(uid)
	fmt.Printf("Opening order in browser: %s\n", u)
	if err := browser.OpenURL(u); err != nil {
		return failure.Wrap(err)
	}
	return nil
}
