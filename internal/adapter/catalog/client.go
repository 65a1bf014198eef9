package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/repository"
)

const endpoint = "/online-shop"

// StatusError is returned for any non-2xx catalog response. A 404
// matches repository.ErrNotFound through errors.Is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: HTTP %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == repository.ErrNotFound && e.Code == http.StatusNotFound
}

// Client fetches products from the remote online-shop API. It
// implements repository.CatalogReader. No retries: a failed fetch is
// reported to the caller, who decides whether to try again.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.NoOp()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type listEnvelope struct {
	Data []entity.Product `json:"data"`
	Meta json.RawMessage  `json:"meta"`
}

type singleEnvelope struct {
	Data entity.Product `json:"data"`
}

// List retrieves the full product catalog.
func (c *Client) List(ctx context.Context) ([]entity.Product, error) {
	var envelope listEnvelope
	if err := c.getJSON(ctx, c.baseURL+endpoint, &envelope); err != nil {
		return nil, err
	}
	c.log.Debugf("catalog list fetched, %d products", len(envelope.Data))
	return envelope.Data, nil
}

// Get retrieves a single product by ID.
func (c *Client) Get(ctx context.Context, productID string) (*entity.Product, error) {
	var envelope singleEnvelope
	requestURL := c.baseURL + endpoint + "/" + url.PathEscape(productID)
	if err := c.getJSON(ctx, requestURL, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (c *Client) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("catalog request failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnf("catalog returned HTTP %d for %s", resp.StatusCode, requestURL)
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}
