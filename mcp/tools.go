package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/fieldobs/modisub/modis"
)

var validate = validator.New()

func InitTools(client *modis.Client) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(ListProducts(client)))
	tools = append(tools, newServerTool(ListBands(client)))
	tools = append(tools, newServerTool(ListDates(client)))
	tools = append(tools, newServerTool(FetchSubset(client)))

	return tools
}

// toolResultJSON renders a decoded service document back to JSON text
func toolResultJSON(doc modis.Document) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func ListProducts(client *modis.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_products",
			mcp.WithDescription("List the land products available from the MODIS subset web service"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			doc, err := client.Products(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResultJSON(doc)
		}
}

func ListBands(client *modis.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_bands",
			mcp.WithDescription("List the bands available for a MODIS product"),
			mcp.WithString("product", mcp.Required(), mcp.Description("Product code, e.g. MYD09A1")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Product string `mapstructure:"product" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			doc, err := client.Bands(ctx, args.Product)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResultJSON(doc)
		}
}

func ListDates(client *modis.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_dates",
			mcp.WithDescription("List the observation dates available for a MODIS product at a location"),
			mcp.WithString("product", mcp.Required(), mcp.Description("Product code, e.g. MYD09A1")),
			mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Centre latitude of the query area")),
			mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Centre longitude of the query area")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Product   string   `mapstructure:"product" validate:"required"`
				Latitude  *float64 `mapstructure:"latitude" validate:"required"`
				Longitude *float64 `mapstructure:"longitude" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			doc, err := client.Dates(ctx, args.Product, *args.Longitude, *args.Latitude)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResultJSON(doc)
		}
}

func FetchSubset(client *modis.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"fetch_subset",
			mcp.WithDescription("Fetch subset data for a MODIS product around a coordinate. Set band to \"all\" to get every band keyed by band name."),
			mcp.WithString("product", mcp.Required(), mcp.Description("Product code, e.g. MYD09A1")),
			mcp.WithString("band", mcp.Required(), mcp.Description("Band name, or \"all\" for every band")),
			mcp.WithNumber("latitude", mcp.Required(), mcp.Description("Centre latitude of the query area")),
			mcp.WithNumber("longitude", mcp.Required(), mcp.Description("Centre longitude of the query area")),
			mcp.WithString("startDate", mcp.Required(), mcp.Description("First MODIS date code, e.g. A2003101")),
			mcp.WithString("endDate", mcp.Required(), mcp.Description("Last MODIS date code, e.g. A2003111")),
			mcp.WithNumber("kmAboveBelow", mcp.Required(), mcp.Description("Kernel size above/below the centre, km")),
			mcp.WithNumber("kmLeftRight", mcp.Required(), mcp.Description("Kernel size left/right of the centre, km")),
			mcp.WithString("siteid", mcp.Description("Pre-registered site identifier")),
			mcp.WithString("network", mcp.Description("Site network name")),
			mcp.WithString("network_siteid", mcp.Description("Site identifier within the network")),
			mcp.WithString("email", mcp.Description("Email the result to this address")),
			mcp.WithString("uid", mcp.Description("Order number for later retrieval")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			// The argument names are exactly the service's search terms, so
			// the raw argument map goes straight through the library's own
			// validation.
			doc, err := client.FetchSubset(ctx, modis.SearchParams(req.Params.Arguments))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResultJSON(doc)
		}
}
