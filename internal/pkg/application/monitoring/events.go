package monitoring

import (
	"encoding/json"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
)

type MeasurementCreated struct {
	Measurement types.Measurement `json:"measurement"`
	Timestamp   time.Time         `json:"timestamp"`
}

func (m *MeasurementCreated) ContentType() string {
	return "application/json"
}

func (m *MeasurementCreated) TopicName() string {
	return "monitoring.measurementCreated"
}

func (m *MeasurementCreated) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
