package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-push-mirror/internal/adapter"
	"github.com/MKhiriev/go-push-mirror/internal/logger"
	"github.com/MKhiriev/go-push-mirror/internal/mock"
	"github.com/MKhiriev/go-push-mirror/models"
)

func TestDeviceRegistry_EnsureLoaded_FetchesOnceAndPublishesEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	pushAdapter := mock.NewMockPushAdapter(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	devices := []models.Device{
		{Identifier: "dev1", DisplayName: "Laptop"},
		{Identifier: "dev2", DisplayName: "Phone"},
	}

	pushAdapter.EXPECT().
		ListDevices(gomock.Any(), models.DeviceOptions{Active: true, Limit: 10}).
		Return(models.DeviceList{Devices: devices}, nil).
		Times(1)
	presenter.EXPECT().OnDevicesUpdated(devices).Times(2)

	registry := NewDeviceRegistry(pushAdapter, presenter, logger.Nop())

	assert.Equal(t, devices, registry.EnsureLoaded(context.Background()))
	assert.Equal(t, devices, registry.EnsureLoaded(context.Background()))
}

func TestDeviceRegistry_EnsureLoaded_ErrorKeepsCacheEmptyAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	pushAdapter := mock.NewMockPushAdapter(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	devices := []models.Device{{Identifier: "dev1", DisplayName: "Laptop"}}

	gomock.InOrder(
		pushAdapter.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(models.DeviceList{}, adapter.ErrTransport),
		pushAdapter.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(models.DeviceList{Devices: devices}, nil),
	)
	presenter.EXPECT().OnDevicesUpdated([]models.Device{})
	presenter.EXPECT().OnDevicesUpdated(devices)

	registry := NewDeviceRegistry(pushAdapter, presenter, logger.Nop())

	assert.Empty(t, registry.EnsureLoaded(context.Background()))
	_, err := registry.Resolve("Laptop")
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	assert.Equal(t, devices, registry.EnsureLoaded(context.Background()))
}

func TestDeviceRegistry_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	pushAdapter := mock.NewMockPushAdapter(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	pushAdapter.EXPECT().ListDevices(gomock.Any(), gomock.Any()).Return(models.DeviceList{Devices: []models.Device{
		{Identifier: "dev1", DisplayName: "Laptop"},
		{Identifier: "dev2", DisplayName: "Living Room Mirror"},
	}}, nil)
	presenter.EXPECT().OnDevicesUpdated(gomock.Any())

	registry := NewDeviceRegistry(pushAdapter, presenter, logger.Nop())
	registry.EnsureLoaded(context.Background())

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "exact", input: "Laptop", want: "dev1"},
		{name: "case insensitive", input: "living room MIRROR", want: "dev2"},
		{name: "prefix is not a match", input: "Lap", wantErr: ErrDeviceNotFound},
		{name: "unknown", input: "Tablet", wantErr: ErrDeviceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Resolve(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
