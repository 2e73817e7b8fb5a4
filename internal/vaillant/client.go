package vaillant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"vaillant_bridge/internal/logger"
)

// API is the vendor surface consumed by the facade services.
type API interface {
	// EnsureAuthenticated lazily logs in and refreshes an expired token.
	// No-op while the token is valid; safe to call before every
	// vendor operation.
	EnsureAuthenticated(ctx context.Context) error

	GetSystems(ctx context.Context) ([]System, error)
	GetDeviceBuckets(ctx context.Context, systemID, deviceUUID, resolution string, start, end time.Time) ([]DeviceData, error)
	SetZoneOperatingMode(ctx context.Context, systemID string, zoneIndex int, mode string) error
	SetZoneHeatingSetpoint(ctx context.Context, systemID string, zoneIndex int, setpoint float64) error

	// Close releases the underlying vendor connection. Called once during
	// process shutdown.
	Close()
}

// Production endpoints of the Vaillant group cloud.
const (
	defaultIdentityURL = "https://identity.vaillant-group.com/auth/realms"
	defaultAPIURL      = "https://api.vaillant-group.com/service-connected-control/end-user-app-api/v1"

	clientID       = "myvaillant"
	requestTimeout = 30 * time.Second
)

// Config carries the vendor account and endpoint settings.
type Config struct {
	User     string
	Password string
	Brand    string // e.g. "vaillant", "sdbg"
	Country  string // e.g. "germany"

	// IdentityURL and APIURL override the production endpoints; tests point
	// them at local servers.
	IdentityURL string
	APIURL      string
}

// Client talks to the Vaillant cloud on behalf of a single account. It owns
// the session (token pair and expiry) and a keep-alive HTTP connection to
// the vendor; both live for the process lifetime.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger

	// mu serializes the session check-then-act in EnsureAuthenticated so
	// that at most one login or refresh is in flight at any time.
	mu      sync.Mutex
	session session
}

// NewClient builds a client for the given account. No network traffic
// happens here; the session is established lazily on first use.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.IdentityURL == "" {
		cfg.IdentityURL = defaultIdentityURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// Close releases the keep-alive connection to the vendor.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// GetSystems returns all installations of the account. The bridge only ever
// consults the first one.
func (c *Client) GetSystems(ctx context.Context) ([]System, error) {
	var systems []System
	if err := c.doJSON(ctx, http.MethodGet, "systems", "/systems", nil, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// GetDeviceBuckets returns the energy-usage series of one device within
// [start, end] at the given resolution. Filtering by operation mode and
// energy type is left to the caller.
func (c *Client) GetDeviceBuckets(ctx context.Context, systemID, deviceUUID, resolution string, start, end time.Time) ([]DeviceData, error) {
	path := fmt.Sprintf("/emf/v2/%s/devices/%s/buckets?resolution=%s&startDate=%s&endDate=%s",
		systemID, deviceUUID, resolution,
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))

	var data []DeviceData
	if err := c.doJSON(ctx, http.MethodGet, "buckets", path, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SetZoneOperatingMode changes the heating operating mode of a zone.
// mode must be one of the vendor's OperatingMode* constants.
func (c *Client) SetZoneOperatingMode(ctx context.Context, systemID string, zoneIndex int, mode string) error {
	path := fmt.Sprintf("/systems/%s/zones/%d/heating-operation-mode", systemID, zoneIndex)
	body := map[string]string{"operationMode": mode}
	return c.doJSON(ctx, http.MethodPatch, "zone_mode", path, body, nil)
}

// SetZoneHeatingSetpoint changes the manual-mode heating setpoint of a zone.
func (c *Client) SetZoneHeatingSetpoint(ctx context.Context, systemID string, zoneIndex int, setpoint float64) error {
	path := fmt.Sprintf("/systems/%s/zones/%d/manual-mode-setpoint", systemID, zoneIndex)
	body := map[string]any{"setpoint": setpoint, "type": "heating"}
	return c.doJSON(ctx, http.MethodPatch, "zone_setpoint", path, body, nil)
}

// doJSON performs one authorized vendor call. endpoint is the coarse metric
// label (no IDs), path the concrete URL path. body (when non-nil) is sent as
// JSON; out (when non-nil) receives the decoded response. Non-2xx statuses
// become a RequestError.
func (c *Client) doJSON(ctx context.Context, method, endpoint, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Method: method, Path: path, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIURL+path, reader)
	if err != nil {
		return &RequestError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		vendorRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return &RequestError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	vendorRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Method: method, Path: path, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
