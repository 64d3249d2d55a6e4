package mcp

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldobs/modisub/modis"
)

// Command returns the MCP server command. The client is built lazily so
// environment configuration is read when the server starts, not when the
// command tree is assembled.
func Command(newClient func(ctx context.Context) (*modis.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			return NewServer(client).Run()
		},
	}
}
