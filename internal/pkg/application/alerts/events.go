package alerts

import (
	"encoding/json"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Timestamp time.Time   `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertStatusChanged struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertStatusChanged) ContentType() string {
	return "application/json"
}
func (a *AlertStatusChanged) TopicName() string {
	return "alerts.alertStatusChanged"
}
func (a *AlertStatusChanged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
