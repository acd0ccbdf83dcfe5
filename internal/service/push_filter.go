package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-push-mirror/internal/config"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/models"
)

type pushFilter struct {
	registry  DeviceRegistry
	presenter Presenter
	cfg       config.Filter

	logger *logger.Logger
}

// NewPushFilter builds the three-stage filter pipeline: target device,
// sender allow-list, then the type/state split.
func NewPushFilter(registry DeviceRegistry, presenter Presenter, cfg config.Filter, logger *logger.Logger) PushFilter {
	return &pushFilter{
		registry:  registry,
		presenter: presenter,
		cfg:       cfg,
		logger:    logger,
	}
}

func (f *pushFilter) Apply(ctx context.Context, pushes []models.Push) FilterResult {
	pushes = f.byTargetDevice(pushes)
	pushes = f.bySender(pushes)
	return f.split(pushes)
}

// byTargetDevice fails open: an unresolvable device name keeps the batch.
func (f *pushFilter) byTargetDevice(pushes []models.Push) []models.Push {
	if f.cfg.TargetDeviceName == "" {
		return pushes
	}

	deviceID, err := f.registry.Resolve(f.cfg.TargetDeviceName)
	if err != nil {
		f.logger.Warn().
			Err(err).
			Str("func", "pushFilter.byTargetDevice").
			Str("device", f.cfg.TargetDeviceName).
			Msg("target device not resolved, skipping device filter")
		return pushes
	}

	kept := make([]models.Push, 0, len(pushes))
	for _, push := range pushes {
		if f.targetsDevice(push, deviceID) {
			kept = append(kept, push)
		}
	}
	return kept
}

func (f *pushFilter) targetsDevice(push models.Push, deviceID string) bool {
	if push.TargetDeviceID == deviceID {
		return true
	}
	if push.TargetDeviceID != "" {
		return false
	}
	if f.cfg.Mode == config.FilterModeSimple {
		return true
	}
	return !f.cfg.ExcludeBroadcast
}

// bySender fails closed: a non-empty allow-list without matches yields an
// empty batch.
func (f *pushFilter) bySender(pushes []models.Push) []models.Push {
	if len(f.cfg.SenderNames) == 0 {
		return pushes
	}

	kept := make([]models.Push, 0, len(pushes))
	for _, push := range pushes {
		for _, name := range f.cfg.SenderNames {
			if strings.EqualFold(push.SenderName, name) {
				kept = append(kept, push)
				break
			}
		}
	}
	return kept
}

func (f *pushFilter) split(pushes []models.Push) FilterResult {
	result := FilterResult{Display: make([]models.Push, 0, len(pushes))}

	for _, push := range pushes {
		if !push.Active || (push.Dismissed && !f.cfg.ShowDismissed) {
			continue
		}

		switch push.Type {
		case models.PushNote, models.PushLink:
			if push.Body == "" || push.IsCommand() {
				continue
			}
			result.Display = append(result.Display, push)
		case models.PushFile:
			result.Files = append(result.Files, push)
			f.presenter.OnFileReceived(push)
		default:
			// unknown push types are dropped
		}
	}

	return result
}
