package modis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// validParams mirrors the service documentation's example search
func validParams() SearchParams {
	return SearchParams{
		"product":      "MYD09A1",
		"latitude":     39.56499,
		"longitude":    -121.55527,
		"band":         "sur_refl_b06",
		"startDate":    "A2003101",
		"endDate":      "A2003111",
		"kmAboveBelow": 1,
		"kmLeftRight":  1,
	}
}

func TestFetchSubsetRejectsUnknownParams(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tests := []struct {
		name     string
		mutate   func(SearchParams)
		wantKeys string
	}{
		{
			name:     "single unknown key",
			mutate:   func(p SearchParams) { p["projection"] = "sinusoidal" },
			wantKeys: "projection",
		},
		{
			name: "multiple unknown keys",
			mutate: func(p SearchParams) {
				p["format"] = "geotiff"
				p["compress"] = true
			},
			wantKeys: "compress, format",
		},
	}

	client := New(WithBaseURL(srv.URL))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(params)

			doc, err := client.FetchSubset(context.Background(), params)
			if !failure.Is(err, ErrInvalidParameter) {
				t.Fatalf("FetchSubset() error = %v, want code %v", err, ErrInvalidParameter)
			}
			if doc != nil {
				t.Errorf("FetchSubset() = %v, want nil", doc)
			}
			if msg := failure.MessageOf(err).String(); !strings.Contains(msg, tt.wantKeys) {
				t.Errorf("error message %q does not name keys %q", msg, tt.wantKeys)
			}
		})
	}

	if requests != 0 {
		t.Errorf("server received %d requests, want 0", requests)
	}
}

func TestFetchSubsetMissingRequiredParams(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tests := []struct {
		name     string
		drop     []string
		wantKeys string
	}{
		{name: "no product", drop: []string{"product"}, wantKeys: "product"},
		{name: "no band", drop: []string{"band"}, wantKeys: "band"},
		{name: "no dates", drop: []string{"startDate", "endDate"}, wantKeys: "endDate, startDate"},
		{name: "no kernel size", drop: []string{"kmAboveBelow", "kmLeftRight"}, wantKeys: "kmAboveBelow, kmLeftRight"},
	}

	client := New(WithBaseURL(srv.URL))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			for _, key := range tt.drop {
				delete(params, key)
			}

			_, err := client.FetchSubset(context.Background(), params)
			if !failure.Is(err, ErrInvalidParameter) {
				t.Fatalf("FetchSubset() error = %v, want code %v", err, ErrInvalidParameter)
			}
			if msg := failure.MessageOf(err).String(); !strings.Contains(msg, tt.wantKeys) {
				t.Errorf("error message %q does not name keys %q", msg, tt.wantKeys)
			}
		})
	}

	if requests != 0 {
		t.Errorf("server received %d requests, want 0", requests)
	}
}

func TestFetchSubsetSingleBand(t *testing.T) {
	const body = `{"band":"sur_refl_b06","cellsize":463.312716528,"nrows":2,"ncols":3,"subset":[{"band":"sur_refl_b06","calendar_date":"2003-04-15","data":[1610,1610,1658,1590,-28672,-28672]}]}`

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/MYD09A1/subset" {
			t.Errorf("request path = %q, want %q", r.URL.Path, "/MYD09A1/subset")
		}
		q := r.URL.Query()
		if got := q.Get("band"); got != "sur_refl_b06" {
			t.Errorf("band query parameter = %q, want %q", got, "sur_refl_b06")
		}
		if q.Has("product") {
			t.Error("product must travel in the path, not the query string")
		}
		if got := q.Get("kmAboveBelow"); got != "1" {
			t.Errorf("kmAboveBelow query parameter = %q, want %q", got, "1")
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	doc, err := client.FetchSubset(context.Background(), validParams())
	if err != nil {
		t.Fatalf("FetchSubset() error = %v", err)
	}
	if requests != 1 {
		t.Errorf("server received %d requests, want 1", requests)
	}

	var want Document
	if err := json.Unmarshal([]byte(body), &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("FetchSubset() mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchSubsetAllBands(t *testing.T) {
	var subsetOrder []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/MYD09A1/bands":
			w.Write([]byte(`{"bands":[{"band":"b1","description":"one"},{"band":"b2","description":"two"}]}`))
		case "/MYD09A1/subset":
			band := r.URL.Query().Get("band")
			subsetOrder = append(subsetOrder, band)
			w.Write([]byte(`{"band":"` + band + `"}`))
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	params := validParams()
	params["band"] = AllBands

	client := New(WithBaseURL(srv.URL))
	doc, err := client.FetchSubset(context.Background(), params)
	if err != nil {
		t.Fatalf("FetchSubset() error = %v", err)
	}

	if diff := cmp.Diff([]string{"b1", "b2"}, subsetOrder); diff != "" {
		t.Errorf("subset request order mismatch (-want +got):\n%s", diff)
	}

	want := map[string]Document{
		"b1": map[string]any{"band": "b1"},
		"b2": map[string]any{"band": "b2"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("FetchSubset() mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchSubsetAllBandsShortCircuit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/MYD09A1/bands":
			w.Write([]byte(`{"bands":[{"band":"b1"},{"band":"b2"}]}`))
		case "/MYD09A1/subset":
			if r.URL.Query().Get("band") == "b2" {
				w.Write([]byte("not json"))
				return
			}
			w.Write([]byte(`{"band":"b1"}`))
		}
	}))
	defer srv.Close()

	params := validParams()
	params["band"] = AllBands

	client := New(WithBaseURL(srv.URL))
	doc, err := client.FetchSubset(context.Background(), params)
	if !failure.Is(err, ErrDecode) {
		t.Fatalf("FetchSubset() error = %v, want code %v", err, ErrDecode)
	}
	if doc != nil {
		t.Errorf("FetchSubset() = %v, want no partial result", doc)
	}
}

func TestFetchSubsetBandCatalogUnusable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing bands field", body: `{"products":[]}`},
		{name: "bands not a list", body: `{"bands":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			params := validParams()
			params["band"] = AllBands

			client := New(WithBaseURL(srv.URL))
			if _, err := client.FetchSubset(context.Background(), params); !failure.Is(err, ErrDecode) {
				t.Errorf("FetchSubset() error = %v, want code %v", err, ErrDecode)
			}
		})
	}
}

func TestSubsetQueryValuesOmitsUnsetOptionals(t *testing.T) {
	query, err := parseSearchParams(validParams())
	if err != nil {
		t.Fatalf("parseSearchParams() error = %v", err)
	}

	v := query.values()
	for _, key := range []string{"product", "siteid", "network", "network_siteid", "email", "uid"} {
		if v.Has(key) {
			t.Errorf("query string contains %q, want it omitted", key)
		}
	}

	params := validParams()
	params["email"] = "someone@example.org"
	params["uid"] = "order-17"
	query, err = parseSearchParams(params)
	if err != nil {
		t.Fatalf("parseSearchParams() error = %v", err)
	}
	v = query.values()
	if got := v.Get("email"); got != "someone@example.org" {
		t.Errorf("email query parameter = %q, want %q", got, "someone@example.org")
	}
	if got := v.Get("uid"); got != "order-17" {
		t.Errorf("uid query parameter = %q, want %q", got, "order-17")
	}
}

func TestErrorStatusBodyStillDecoded(t *testing.T) {
	// The service reports its own failures as JSON bodies with error
	// statuses; those are handed back decoded, not turned into errors.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid product"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	doc, err := client.FetchSubset(context.Background(), validParams())
	if err != nil {
		t.Fatalf("FetchSubset() error = %v", err)
	}
	want := map[string]any{"message": "Invalid product"}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("FetchSubset() mismatch (-want +got):\n%s", diff)
	}
}
