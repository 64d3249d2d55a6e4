// Package modis is a client for the ORNL DAAC MODIS/VIIRS land product
// subset web service.
//
// The modis package provides:
// - Product, band and observation date catalog listings
// - Subset retrieval for a point and kernel size, single band or all bands
// - Search parameter validation against the service's fixed parameter set
package modis
