package alerts

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// NewDeviceNotObservedHandler turns watchdog notifications about silent
// devices into device-offline alerts. The watchdog resolves the owning
// patient before publishing, so the alert lands on the right record.
func NewDeviceNotObservedHandler(detector Detector, svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "device-not-observed")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := struct {
			DeviceID     string `json:"deviceID"`
			PatientID    string `json:"patientID"`
			LastSyncTime string `json:"lastSyncTime"`
		}{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		lastSync, err := parseRFC3339(msg.LastSyncTime)
		if err != nil {
			log.Error("invalid lastSyncTime in message", "err", err.Error())
			return
		}

		candidate, offline := detector.CheckDeviceOffline(ctx, msg.PatientID, msg.DeviceID, lastSync)
		if !offline {
			return
		}

		active, err := svc.Query(ctx, 0, 100, msg.PatientID, "active")
		if err != nil {
			log.Error("could not fetch alerts", "err", err.Error())
			return
		}

		for _, a := range active.Data {
			if a.AlertType == candidate.AlertType && a.Data["device_id"] == msg.DeviceID {
				// an active offline alert for this device already exists
				return
			}
		}

		_, err = svc.Add(ctx, candidate)
		if err != nil {
			log.Error("could not create alert", "err", err.Error())
			return
		}
	}
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
