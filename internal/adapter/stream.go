package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
	"nhooyr.io/websocket"
)

const (
	// mirrored notifications carry base64 icons
	streamReadLimit  = 1 << 20
	streamBufferSize = 16
)

type websocketStreamAdapter struct {
	streamURL string

	logger *logger.Logger
}

// NewWebsocketStreamAdapter constructs a websocket implementation of
// [StreamAdapter]. The access token is appended to adapterCfg.StreamAddress
// as the last path segment.
func NewWebsocketStreamAdapter(adapterCfg config.Adapter, logger *logger.Logger) (StreamAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.StreamAddress, "wss")
	if err != nil {
		return nil, fmt.Errorf("invalid adapter stream address: %w", err)
	}

	token := strings.TrimSpace(adapterCfg.AccessToken)
	if token == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrUnauthorized)
	}

	return &websocketStreamAdapter{
		streamURL: baseURL + "/" + url.PathEscape(token),
		logger:    logger,
	}, nil
}

// OpenStream implements [StreamAdapter].
func (s *websocketStreamAdapter) OpenStream(ctx context.Context) (<-chan models.StreamEvent, error) {
	conn, _, err := websocket.Dial(ctx, s.streamURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial stream: %v", ErrTransport, err)
	}
	conn.SetReadLimit(streamReadLimit)

	events := make(chan models.StreamEvent, streamBufferSize)
	go s.readLoop(ctx, conn, events)

	return events, nil
}

func (s *websocketStreamAdapter) readLoop(ctx context.Context, conn *websocket.Conn, events chan<- models.StreamEvent) {
	defer close(events)
	defer conn.Close(websocket.StatusNormalClosure, "")

	if !emit(ctx, events, models.StreamEvent{Kind: models.StreamConnect}) {
		return
	}

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			emit(ctx, events, models.StreamEvent{
				Kind: models.StreamError,
				Err:  fmt.Errorf("%w: read stream: %v", ErrTransport, err),
			})
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		event, err := decodeFrame(data)
		if err != nil {
			s.logger.Warn().
				Str("func", "websocketStreamAdapter.readLoop").
				Err(err).
				Msg("skipping malformed stream frame")
			continue
		}

		if !emit(ctx, events, event) {
			return
		}
	}
}

func decodeFrame(data []byte) (models.StreamEvent, error) {
	var event models.StreamEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return models.StreamEvent{}, fmt.Errorf("decode frame: %w", err)
	}
	if event.Kind == "" {
		return models.StreamEvent{}, fmt.Errorf("decode frame: missing type")
	}
	return event, nil
}

func emit(ctx context.Context, events chan<- models.StreamEvent, event models.StreamEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
