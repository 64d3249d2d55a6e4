package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fieldobs/modisub/modis"
)

// Server represents the MCP server for modisub
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance backed by the given client
func NewServer(client *modis.Client) *Server {
	s := server.NewMCPServer("modisub", modis.Version)

	registerTools(s, client)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, client *modis.Client) {
	tools := InitTools(client)
	s.AddTools(tools...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
