// Package mcp implements the Model Context Protocol server for modisub.
//
// The mcp package provides:
// - MCP server implementation over stdio
// - Tool definitions for the product, band and date catalogs
// - A subset retrieval tool mirroring the library's search terms
package mcp
