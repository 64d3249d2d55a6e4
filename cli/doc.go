// Package cli implements the command-line interface for modisub.
//
// The cli package provides:
// - Catalog commands for products, bands and observation dates
// - Subset retrieval with flag-based search terms
// - Browser integration for finished subset orders
// - Environment-based configuration of the service client
package cli
