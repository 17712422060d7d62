// Package catalog retrieves the product catalog from the remote products API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"

	productEntity "storefront/model/entity/product"
)

// DefaultURL is the mock products API the storefront ships against.
const DefaultURL = "https://5fc9346b2af77700165ae514.mockapi.io/products"

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidProduct   = errors.New("invalid product")
)

// Fetcher returns the whole catalog in one call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]productEntity.Product, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]productEntity.Product, error)

func (f FetcherFunc) Fetch(ctx context.Context) ([]productEntity.Product, error) { return f(ctx) }

// HTTPFetcher issues a single GET against URL with no query parameters.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

func NewHTTPFetcher(rawURL string, timeout time.Duration) *HTTPFetcher {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	return &HTTPFetcher{URL: rawURL, Client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]productEntity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("request failed with status code %d: %w", res.StatusCode, ErrUnexpectedStatus)
	}
	return Decode(res.Body)
}

// FileFetcher reads the catalog from a local JSON file in the API's format.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]productEntity.Product, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

// NewFetcher picks a FileFetcher for file:// URLs and an HTTPFetcher otherwise.
func NewFetcher(rawURL string, timeout time.Duration) Fetcher {
	if u, err := url.Parse(rawURL); err == nil && u.Scheme == "file" {
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return &FileFetcher{Path: path}
	}
	return NewHTTPFetcher(rawURL, timeout)
}

// Decode reads a JSON array of product records. The API is loose about
// types (price arrives as "51.00", ids may be numbers), so records go
// through a weakly typed decoder.
func Decode(r io.Reader) ([]productEntity.Product, error) {
	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]productEntity.Product, 0, len(raw))
	for i, rec := range raw {
		var p productEntity.Product
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			DecodeHook:       numberToStringHook(),
			Result:           &p,
			TagName:          "mapstructure",
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(rec); err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidProduct, i, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w at index %d: missing id", ErrInvalidProduct, i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w %s: negative price", ErrInvalidProduct, p.ID)
		}
		products = append(products, p)
	}
	return products, nil
}

// numberToStringHook renders JSON numbers bound for string fields without an
// exponent, so an id of 1e6 decodes as "1000000".
func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		if v, ok := data.(float64); ok {
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
		return data, nil
	}
}
