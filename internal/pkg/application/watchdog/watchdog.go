package watchdog

import (
	"context"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultCheckInterval = 10 * time.Minute

type Watchdog interface {
	Start(ctx context.Context)
	Stop()
}

//go:generate moq -rm -out devicelister_mock.go . DeviceLister
type DeviceLister interface {
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
}

type watchdogImpl struct {
	done chan bool

	devices    DeviceLister
	messenger  messaging.MsgContext
	staleAfter time.Duration
	sweepEvery time.Duration
}

func New(devices DeviceLister, messenger messaging.MsgContext, staleAfter, sweepEvery time.Duration) Watchdog {
	if sweepEvery <= 0 {
		sweepEvery = DefaultCheckInterval
	}

	return &watchdogImpl{
		done:       make(chan bool),
		devices:    devices,
		messenger:  messenger,
		staleAfter: staleAfter,
		sweepEvery: sweepEvery,
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdogImpl) Stop() {
	w.done <- true
}

func (w *watchdogImpl) run(ctx context.Context) {
	ticker := time.NewTicker(w.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep walks all active devices and publishes a notification for each
// one whose last sync is older than the configured window. Alert
// creation and dedup happen downstream in the message handler.
func (w *watchdogImpl) sweep(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	const pageSize = 100
	offset := 0

	for {
		devices, err := w.devices.QueryDevices(ctx,
			storage.WithStatus(types.DeviceStatusActive),
			storage.WithOffset(offset),
			storage.WithLimit(pageSize),
		)
		if err != nil {
			log.Error("watchdog could not list devices", "err", err.Error())
			return
		}

		cutoff := time.Now().UTC().Add(-w.staleAfter)

		for _, d := range devices.Data {
			if d.LastSyncTime == nil || d.LastSyncTime.After(cutoff) {
				continue
			}

			err = w.messenger.PublishOnTopic(ctx, &DeviceNotObserved{
				DeviceID:     d.DeviceID,
				PatientID:    d.PatientID,
				LastSyncTime: d.LastSyncTime.UTC().Format(time.RFC3339),
			})
			if err != nil {
				log.Error("could not publish device not observed", "device_id", d.DeviceID, "err", err.Error())
			}
		}

		offset += pageSize
		if offset >= int(devices.TotalCount) {
			return
		}
	}
}
