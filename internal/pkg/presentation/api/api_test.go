package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"
	"github.com/careflow/patient-monitoring/internal/pkg/application/analytics"
	"github.com/careflow/patient-monitoring/internal/pkg/application/monitoring"
	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/router"
	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/matryer/is"
)

func TestHealthEndpoint(t *testing.T) {
	is, mux := testSetup(t, &monitoring.ServiceMock{}, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(http.StatusNoContent, res.Code)
}

func TestCreateMeasurementReturnsTriggeredAlerts(t *testing.T) {
	svc := &monitoring.ServiceMock{
		AddMeasurementFunc: func(ctx context.Context, m types.Measurement) (types.Measurement, []types.Alert, error) {
			m.ID = "m-01"
			return m, []types.Alert{{ID: "a-01", AlertType: types.AlertHeartRateHigh, PatientID: m.PatientID}}, nil
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	body := []byte(`{"patientID": "p-01", "heartRate": 160}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/measurements", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	response := struct {
		Measurement types.Measurement `json:"measurement"`
		Alerts      []types.Alert     `json:"alerts"`
	}{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal("m-01", response.Measurement.ID)
	is.Equal(1, len(response.Alerts))
	is.Equal(types.AlertHeartRateHigh, response.Alerts[0].AlertType)
}

func TestCreateMeasurementWithoutPatientIsRejected(t *testing.T) {
	svc := &monitoring.ServiceMock{}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	body := []byte(`{"heartRate": 160}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/measurements", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.Equal(0, len(svc.AddMeasurementCalls()))
}

func TestCreateMeasurementBatch(t *testing.T) {
	svc := &monitoring.ServiceMock{
		AddMeasurementsFunc: func(ctx context.Context, measurements []types.Measurement) ([]types.Measurement, []types.Alert, error) {
			for i := range measurements {
				measurements[i].ID = fmt.Sprintf("m-%02d", i+1)
			}
			return measurements, []types.Alert{{ID: "a-01", AlertType: types.AlertBloodOxygenLow}}, nil
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	body := []byte(`[{"patientID": "p-01", "heartRate": 160}, {"patientID": "p-01", "bloodOxygen": 85}]`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/measurements/batch", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	response := struct {
		Measurements []types.Measurement `json:"measurements"`
		Alerts       []types.Alert       `json:"alerts"`
	}{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(2, len(response.Measurements))
	is.Equal("m-02", response.Measurements[1].ID)
	is.Equal(1, len(response.Alerts))
}

func TestCreateMeasurementBatchWithUnknownPatientIs404(t *testing.T) {
	svc := &monitoring.ServiceMock{
		AddMeasurementsFunc: func(ctx context.Context, measurements []types.Measurement) ([]types.Measurement, []types.Alert, error) {
			return nil, nil, monitoring.ErrPatientNotFound
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	body := []byte(`[{"patientID": "missing", "heartRate": 72}]`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/measurements/batch", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestGetUnknownPatientIs404(t *testing.T) {
	svc := &monitoring.ServiceMock{
		GetPatientFunc: func(ctx context.Context, patientID string) (types.Patient, error) {
			return types.Patient{}, monitoring.ErrPatientNotFound
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/patients/missing", nil))

	is.Equal(http.StatusNotFound, res.Code)
}

func TestCreatePatient(t *testing.T) {
	svc := &monitoring.ServiceMock{
		AddPatientFunc: func(ctx context.Context, patient types.Patient) (types.Patient, error) {
			patient.ID = "p-01"
			patient.Active = true
			return patient, nil
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	body := []byte(`{"firstName": "Maja", "lastName": "Lindberg"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/patients", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var created types.Patient
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &created))
	is.Equal("p-01", created.ID)
	is.True(created.Active)
}

func TestVitalsSummaryPassesDaysParam(t *testing.T) {
	analyticsSvc := &analytics.ServiceMock{
		GetVitalsSummaryFunc: func(ctx context.Context, patientID string, days int) (analytics.VitalsSummary, error) {
			return analytics.VitalsSummary{PatientID: patientID, TimePeriodDays: days}, nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, &alerts.AlertServiceMock{}, analyticsSvc)

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/patients/p-01/vitals-summary?days=30", nil))

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(analyticsSvc.GetVitalsSummaryCalls()))
	is.Equal(30, analyticsSvc.GetVitalsSummaryCalls()[0].Days)

	var summary analytics.VitalsSummary
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &summary))
	is.Equal("p-01", summary.PatientID)
	is.Equal(30, summary.TimePeriodDays)
}

func TestVitalsSummaryDefaultsToSevenDays(t *testing.T) {
	analyticsSvc := &analytics.ServiceMock{
		GetVitalsSummaryFunc: func(ctx context.Context, patientID string, days int) (analytics.VitalsSummary, error) {
			return analytics.VitalsSummary{PatientID: patientID, TimePeriodDays: days}, nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, &alerts.AlertServiceMock{}, analyticsSvc)

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/patients/p-01/vitals-summary", nil))

	is.Equal(http.StatusOK, res.Code)
	is.Equal(7, analyticsSvc.GetVitalsSummaryCalls()[0].Days)
}

func TestHealthRiskEndpoint(t *testing.T) {
	analyticsSvc := &analytics.ServiceMock{
		PredictHealthRiskFunc: func(ctx context.Context, patientID string) (analytics.RiskAssessment, error) {
			return analytics.RiskAssessment{
				PatientID: patientID,
				RiskScore: 3,
				RiskLevel: analytics.RiskLevelMedium,
			}, nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, &alerts.AlertServiceMock{}, analyticsSvc)

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/patients/p-01/health-risk", nil))

	is.Equal(http.StatusOK, res.Code)

	var assessment analytics.RiskAssessment
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &assessment))
	is.Equal(analytics.RiskLevelMedium, assessment.RiskLevel)
}

func TestAcknowledgeAlert(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		AcknowledgeFunc: func(ctx context.Context, alertID, by, notes string) error {
			return nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, alertSvc, &analytics.ServiceMock{})

	body := []byte(`{"by": "nurse-7", "notes": "patient contacted"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts/a-01/acknowledge", bytes.NewReader(body))
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(alertSvc.AcknowledgeCalls()))
	is.Equal("a-01", alertSvc.AcknowledgeCalls()[0].AlertID)
	is.Equal("nurse-7", alertSvc.AcknowledgeCalls()[0].By)
}

func TestResolveUnknownAlertIs404(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID, by, notes string) error {
			return alerts.ErrAlertNotFound
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, alertSvc, &analytics.ServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts/missing/resolve", nil)
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestQueryAlertsForwardsFilters(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, offset, limit int, patientID, status string) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{Data: []types.Alert{}}, nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, alertSvc, &analytics.ServiceMock{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/alerts?patientID=p-01&status=active&limit=10", nil))

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(alertSvc.QueryCalls()))
	is.Equal("p-01", alertSvc.QueryCalls()[0].PatientID)
	is.Equal("active", alertSvc.QueryCalls()[0].Status)
	is.Equal(10, alertSvc.QueryCalls()[0].Limit)
}

func TestActiveAlertCount(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		CountActiveFunc: func(ctx context.Context, patientID string) (int64, error) {
			return 4, nil
		},
	}

	is, mux := testSetup(t, &monitoring.ServiceMock{}, alertSvc, &analytics.ServiceMock{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/alerts/count?patientID=p-01", nil))

	is.Equal(http.StatusOK, res.Code)

	count := struct {
		Count int64 `json:"count"`
	}{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &count))
	is.Equal(int64(4), count.Count)
}

func TestSyncDeviceDefaultsToNow(t *testing.T) {
	svc := &monitoring.ServiceMock{
		SyncDeviceFunc: func(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error {
			return nil
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/v0/devices/dev-42/sync", nil)
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.SyncDeviceCalls()))
	is.Equal("dev-42", svc.SyncDeviceCalls()[0].DeviceID)
	is.True(time.Since(svc.SyncDeviceCalls()[0].SyncTime) < time.Minute)
}

func TestDeleteUnknownMeasurementIs404(t *testing.T) {
	svc := &monitoring.ServiceMock{
		DeleteMeasurementFunc: func(ctx context.Context, measurementID string) error {
			return monitoring.ErrMeasurementNotFound
		},
	}

	is, mux := testSetup(t, svc, &alerts.AlertServiceMock{}, &analytics.ServiceMock{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/measurements/missing", nil)
	res := httptest.NewRecorder()

	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func testSetup(t *testing.T, svc monitoring.Service, alertSvc alerts.AlertService, analyticsSvc analytics.Service) (*is.I, http.Handler) {
	is := is.New(t)

	mux, err := RegisterHandlers(context.Background(), router.New("testing"), svc, alertSvc, analyticsSvc)
	is.NoErr(err)

	return is, mux
}
