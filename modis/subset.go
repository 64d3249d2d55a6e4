package modis

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// AllBands is the band value that requests a fan-out over every band of
// the product
const AllBands = "all"

// SearchParams is the search term mapping accepted by FetchSubset. The
// recognized keys are fixed by the service; any other key is rejected
// before a request is made:
//
//	product        (required) product code, travels in the URL path
//	siteid         pre-registered site identifier
//	network        site network name
//	network_siteid site identifier within a network
//	band           (required) band name, or "all" for every band
//	latitude       (required) centre latitude of the query area
//	longitude      (required) centre longitude of the query area
//	startDate      (required) MODIS date code, e.g. A2003101
//	endDate        (required) MODIS date code
//	kmAboveBelow   (required) kernel size above/below centre, km
//	kmLeftRight    (required) kernel size left/right of centre, km
//	email          set to have the service email the result
//	uid            order number; the finished order is served at
//	               https://modis.ornl.gov/subsetdata/{uid}
type SearchParams map[string]any

// subsetQuery is the typed form of SearchParams. The mapstructure tags
// mirror the service's parameter names exactly.
type subsetQuery struct {
	Product       string   `mapstructure:"product" validate:"required"`
	SiteID        string   `mapstructure:"siteid"`
	Network       string   `mapstructure:"network"`
	NetworkSiteID string   `mapstructure:"network_siteid"`
	Band          string   `mapstructure:"band" validate:"required"`
	Latitude      *float64 `mapstructure:"latitude" validate:"required"`
	Longitude     *float64 `mapstructure:"longitude" validate:"required"`
	StartDate     string   `mapstructure:"startDate" validate:"required"`
	EndDate       string   `mapstructure:"endDate" validate:"required"`
	KmAboveBelow  *float64 `mapstructure:"kmAboveBelow" validate:"required"`
	KmLeftRight   *float64 `mapstructure:"kmLeftRight" validate:"required"`
	Email         string   `mapstructure:"email"`
	UID           string   `mapstructure:"uid"`
}

var validate = newValidator()

// newValidator builds a validator that reports fields by their service
// parameter names rather than the Go field names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
}

// parseSearchParams decodes and validates the search term mapping.
// Unknown keys and missing required keys both fail with InvalidParameter;
// no request has been issued at this point.
func parseSearchParams(params SearchParams) (subsetQuery, error) {
	var query subsetQuery
	var md mapstructure.Metadata

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &query,
		Metadata: &md,
	})
	if err != nil {
		return query, failure.Wrap(err)
	}
	if err := dec.Decode(map[string]any(params)); err != nil {
		return query, failure.Translate(err, ErrInvalidParameter,
			failure.Message("search parameters could not be decoded"),
		)
	}

	if len(md.Unused) > 0 {
		keys := md.Unused
		sort.Strings(keys)
		return query, failure.New(ErrInvalidParameter,
			failure.Message("invalid search parameters: "+strings.Join(keys, ", ")),
			failure.Context{"keys": strings.Join(keys, ", ")},
		)
	}

	if err := validate.Struct(query); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return query, failure.Wrap(err)
		}
		missing := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
			return fe.Field()
		})
		sort.Strings(missing)
		return query, failure.New(ErrInvalidParameter,
			failure.Message("missing required search parameters: "+strings.Join(missing, ", ")),
			failure.Context{"keys": strings.Join(missing, ", ")},
		)
	}

	return query, nil
}

// values serializes the query fields, omitting optional fields that were
// not supplied. product is deliberately absent: it travels in the URL path.
func (q subsetQuery) values() url.Values {
	v := url.Values{}
	v.Set("band", q.Band)
	v.Set("latitude", formatNumber(*q.Latitude))
	v.Set("longitude", formatNumber(*q.Longitude))
	v.Set("startDate", q.StartDate)
	v.Set("endDate", q.EndDate)
	v.Set("kmAboveBelow", formatNumber(*q.KmAboveBelow))
	v.Set("kmLeftRight", formatNumber(*q.KmLeftRight))
	if q.SiteID != "" {
		v.Set("siteid", q.SiteID)
	}
	if q.Network != "" {
		v.Set("network", q.Network)
	}
	if q.NetworkSiteID != "" {
		v.Set("network_siteid", q.NetworkSiteID)
	}
	if q.Email != "" {
		v.Set("email", q.Email)
	}
	if q.UID != "" {
		v.Set("uid", q.UID)
	}
	return v
}

// FetchSubset retrieves subset data for the given search terms.
//
// With a concrete band the result is the decoded subset document. With
// band set to AllBands the band catalog is consulted first and one request
// is issued per band, sequentially and in catalog order; the result is
// then a map[string]Document keyed by band name. A failure on any band
// aborts the whole fetch and no partial result is returned.
func (c *Client) FetchSubset(ctx context.Context, params SearchParams) (Document, error) {
	query, err := parseSearchParams(params)
	if err != nil {
		return nil, err
	}

	if query.Band != AllBands {
		return c.subset(ctx, query.Product, query.values())
	}

	catalog, err := c.Bands(ctx, query.Product)
	if err != nil {
		return nil, err
	}
	bands, err := bandNames(catalog)
	if err != nil {
		return nil, err
	}

	results := make(map[string]Document, len(bands))
	for _, band := range bands {
		v := query.values()
		v.Set("band", band)
		doc, err := c.subset(ctx, query.Product, v)
		if err != nil {
			return nil, err
		}
		results[band] = doc
	}
	return results, nil
}

// subset issues one GET against {product}/subset. Unlike the catalog
// endpoints the service wants no Accept header here.
func (c *Client) subset(ctx context.Context, product string, query url.Values) (Document, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(product + "/subset")
	if err != nil {
		return nil, failure.Translate(err, ErrTransport,
			failure.Message("subset request failed"),
			failure.Context{"product": product, "band": query.Get("band")},
		)
	}
	return decodeDocument(resp.Body(), resp.Request.URL)
}

// bandEntry is the slice of a band catalog document that FetchSubset
// needs: each entry carries at least the band name
type bandEntry struct {
	Band string `mapstructure:"band"`
}

type bandCatalog struct {
	Bands []bandEntry `mapstructure:"bands"`
}

// bandNames pulls the ordered band names out of a band catalog document
func bandNames(catalog Document) ([]string, error) {
	var list bandCatalog
	if err := mapstructure.Decode(catalog, &list); err != nil {
		return nil, failure.Translate(err, ErrDecode,
			failure.Message("band catalog has no usable bands list"),
		)
	}
	if list.Bands == nil {
		return nil, failure.New(ErrDecode,
			failure.Message("band catalog has no usable bands list"),
		)
	}
	return lo.Map(list.Bands, func(b bandEntry, _ int) string {
		return b.Band
	}), nil
}
