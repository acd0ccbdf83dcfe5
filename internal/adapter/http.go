package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/utils"
	"github.com/MKhiriev/go-push-mirror/models"
)

const (
	pushesPath  = "/v2/pushes"
	devicesPath = "/v2/devices"
	userPath    = "/v2/users/me"
)

type httpPushAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPushAdapter constructs a resty implementation of [PushAdapter].
// It normalises and validates the base URL from adapterCfg.APIAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and access token header.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPushAdapter(adapterCfg config.Adapter, logger *logger.Logger) (PushAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress, "https")
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithBaseURL(baseURL, adapterCfg.RequestTimeout).
		WithAccessToken(adapterCfg.AccessToken)

	return &httpPushAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchHistory implements [PushAdapter]. It GETs /v2/pushes with the
// active, limit and cursor query parameters.
func (h *httpPushAdapter) FetchHistory(ctx context.Context, opts models.HistoryOptions) (models.HistoryPage, error) {
	var page models.HistoryPage

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("active", strconv.FormatBool(opts.Active)).
		SetResult(&page)
	if opts.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(min(opts.Limit, models.MaxHistoryLimit)))
	}
	if opts.Cursor != "" {
		req.SetQueryParam("cursor", opts.Cursor)
	}

	resp, err := req.Get(pushesPath)
	if err != nil {
		return models.HistoryPage{}, fmt.Errorf("%w: fetch history request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryPage{}, err
	}

	h.logger.Debug().
		Str("func", "httpPushAdapter.FetchHistory").
		Int("count", len(page.Pushes)).
		Bool("has_cursor", page.Cursor != "").
		Msg("history page received")

	return page, nil
}

// ListDevices implements [PushAdapter]. It GETs /v2/devices.
func (h *httpPushAdapter) ListDevices(ctx context.Context, opts models.DeviceOptions) (models.DeviceList, error) {
	var list models.DeviceList

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("active", strconv.FormatBool(opts.Active)).
		SetResult(&list)
	if opts.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(opts.Limit))
	}

	resp, err := req.Get(devicesPath)
	if err != nil {
		return models.DeviceList{}, fmt.Errorf("%w: list devices request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceList{}, err
	}

	return list, nil
}

// GetCurrentUser implements [PushAdapter]. It GETs /v2/users/me.
func (h *httpPushAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: current user request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}
