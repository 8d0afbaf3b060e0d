package watchdog

import "encoding/json"

type DeviceNotObserved struct {
	DeviceID     string `json:"deviceID"`
	PatientID    string `json:"patientID"`
	LastSyncTime string `json:"lastSyncTime"`
}

func (d *DeviceNotObserved) ContentType() string {
	return "application/json"
}

func (d *DeviceNotObserved) TopicName() string {
	return "watchdog.deviceNotObserved"
}

func (d *DeviceNotObserved) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
