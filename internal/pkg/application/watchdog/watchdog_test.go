package watchdog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestSweepPublishesForStaleDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	staleSync := time.Now().UTC().Add(-30 * time.Hour)
	freshSync := time.Now().UTC().Add(-1 * time.Hour)

	devices := &DeviceListerMock{
		QueryDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			coll := types.Collection[types.Device]{
				Data: []types.Device{
					{DeviceID: "dev-stale", PatientID: "p-01", LastSyncTime: &staleSync},
					{DeviceID: "dev-fresh", PatientID: "p-02", LastSyncTime: &freshSync},
					{DeviceID: "dev-never", PatientID: "p-03"},
				},
				Count:      3,
				TotalCount: 3,
			}
			return coll, nil
		},
	}

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	w := New(devices, messenger, 24*time.Hour, time.Minute).(*watchdogImpl)
	w.sweep(ctx)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))

	published := messenger.PublishOnTopicCalls()[0].Message
	is.Equal("watchdog.deviceNotObserved", published.TopicName())

	var msg DeviceNotObserved
	err := json.Unmarshal(published.Body(), &msg)
	is.NoErr(err)
	is.Equal("dev-stale", msg.DeviceID)
	is.Equal("p-01", msg.PatientID)
	is.Equal(staleSync.Format(time.RFC3339), msg.LastSyncTime)
}

func TestSweepPagesThroughAllDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	staleSync := time.Now().UTC().Add(-30 * time.Hour)

	page := func(n int) types.Collection[types.Device] {
		data := make([]types.Device, 0, n)
		for i := 0; i < n; i++ {
			data = append(data, types.Device{DeviceID: "dev", PatientID: "p", LastSyncTime: &staleSync})
		}
		return types.Collection[types.Device]{Data: data, Count: uint64(n), TotalCount: 150}
	}

	pages := []types.Collection[types.Device]{page(100), page(50)}

	devices := &DeviceListerMock{
		QueryDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			if len(pages) == 0 {
				return types.Collection[types.Device]{TotalCount: 150}, nil
			}
			next := pages[0]
			pages = pages[1:]
			return next, nil
		},
	}

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	w := New(devices, messenger, 24*time.Hour, time.Minute).(*watchdogImpl)
	w.sweep(ctx)

	is.Equal(2, len(devices.QueryDevicesCalls()))
	is.Equal(150, len(messenger.PublishOnTopicCalls()))
}

func TestStopEndsTheRunLoop(t *testing.T) {
	is := is.New(t)

	devices := &DeviceListerMock{
		QueryDevicesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
			return types.Collection[types.Device]{}, nil
		},
	}

	w := New(devices, &messaging.MsgContextMock{}, 24*time.Hour, time.Hour)
	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		is.Fail() // watchdog did not stop
	}
}
