package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaillant_bridge/internal/models"
	"vaillant_bridge/internal/service"
)

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v (%s)", err, w.Body.String())
	}
	return body.Error
}

func TestTelemetryHandlers_HappyPaths(t *testing.T) {
	temp := 21.5
	tel := &mockTelemetry{
		consumption: models.Consumption{ConsumptionM3: 1.2345},
		pressure:    models.Pressure{Pressure: 1.3},
		zoneList: models.ZoneList{Zones: []models.ZoneSummary{
			{Index: 0, Name: "Living Room"},
			{Index: 1, Name: "Bedroom"},
		}},
		zoneDetail: models.ZoneDetail{Index: 1, Name: "Bedroom", CurrentTemperature: &temp, DesiredTemperature: 20, HeatingState: "manual"},
		flow:       models.FlowTemperature{FlowTemperature: 45},
	}
	r := newTestRouter(&service.Service{Telemetry: tel})

	w := get(t, r, "/boiler-consumption/2026/8")
	if w.Code != http.StatusOK {
		t.Fatalf("consumption status=%d, body=%s", w.Code, w.Body.String())
	}
	var cons models.Consumption
	if err := json.Unmarshal(w.Body.Bytes(), &cons); err != nil {
		t.Fatalf("unmarshal consumption: %v", err)
	}
	if cons.ConsumptionM3 != 1.2345 {
		t.Fatalf("unexpected consumption: %+v", cons)
	}
	if tel.lastMonth != 8 || tel.lastYear != 2026 {
		t.Fatalf("month/year not forwarded: %d/%d", tel.lastMonth, tel.lastYear)
	}

	w = get(t, r, "/zones")
	if w.Code != http.StatusOK {
		t.Fatalf("zones status=%d", w.Code)
	}
	var zl models.ZoneList
	_ = json.Unmarshal(w.Body.Bytes(), &zl)
	if len(zl.Zones) != 2 || zl.Zones[1].Name != "Bedroom" {
		t.Fatalf("unexpected zone list: %+v", zl)
	}

	w = get(t, r, "/zone-info/1")
	if w.Code != http.StatusOK {
		t.Fatalf("zone-info status=%d", w.Code)
	}
	if tel.lastZoneIndex != 1 {
		t.Fatalf("index not forwarded: %d", tel.lastZoneIndex)
	}
	var zd models.ZoneDetail
	_ = json.Unmarshal(w.Body.Bytes(), &zd)
	if zd.Name != "Bedroom" || zd.CurrentTemperature == nil || *zd.CurrentTemperature != 21.5 {
		t.Fatalf("unexpected zone detail: %+v", zd)
	}

	w = get(t, r, "/zone-flow-temperature/0")
	if w.Code != http.StatusOK {
		t.Fatalf("flow status=%d", w.Code)
	}

	w = get(t, r, "/get-water-pressure")
	if w.Code != http.StatusOK {
		t.Fatalf("pressure status=%d", w.Code)
	}
	var p models.Pressure
	_ = json.Unmarshal(w.Body.Bytes(), &p)
	if p.Pressure != 1.3 {
		t.Fatalf("unexpected pressure: %+v", p)
	}

	w = get(t, r, "/get-system-info")
	if w.Code != http.StatusOK {
		t.Fatalf("system-info status=%d", w.Code)
	}
}

func TestCurrentMonthConsumption_UsesWallClock(t *testing.T) {
	tel := &mockTelemetry{consumption: models.Consumption{ConsumptionM3: 0.5}}
	r := newTestRouter(&service.Service{Telemetry: tel})

	w := get(t, r, "/boiler-consumption-current-month")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if tel.consumptionCalls != 1 {
		t.Fatalf("expected one consumption call, got %d", tel.consumptionCalls)
	}
	if tel.lastMonth < 1 || tel.lastMonth > 12 || tel.lastYear < 2026 {
		t.Fatalf("implausible month/year: %d/%d", tel.lastMonth, tel.lastYear)
	}
}

func TestBadPathParameters_Return400(t *testing.T) {
	tel := &mockTelemetry{}
	ctl := &mockControl{}
	r := newTestRouter(&service.Service{Telemetry: tel, Control: ctl})

	cases := []struct {
		path string
		msg  string
	}{
		{"/boiler-consumption/abc/8", errBadYear},
		{"/boiler-consumption/2026/abc", errBadMonth},
		{"/boiler-consumption/2026/0", errBadMonth},
		{"/boiler-consumption/2026/13", errBadMonth},
		{"/zone-info/abc", errBadIndex},
		{"/zone-flow-temperature/abc", errBadIndex},
		{"/zone-update/abc/manual", errBadIndex},
		{"/zone-set-temp/abc/20", errBadIndex},
		{"/zone-set-temp/0/hot", errBadTemp},
	}
	for _, tc := range cases {
		w := get(t, r, tc.path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.path, w.Code)
		}
		if got := errorBody(t, w); got != tc.msg {
			t.Fatalf("%s: expected error %q, got %q", tc.path, tc.msg, got)
		}
	}
	if tel.consumptionCalls != 0 || ctl.modeCalls != 0 || ctl.setpointCalls != 0 {
		t.Fatalf("invalid parameters must not reach the services")
	}
}

func TestRecoveredErrors_Keep200WithErrorBody(t *testing.T) {
	cases := []struct {
		name string
		err  error
		path string
		msg  string
	}{
		{"zone not found", service.ErrZoneNotFound, "/zone-info/99", msgZoneNotFound},
		{"no system", service.ErrNoSystem, "/zones", msgNoSystem},
		{"no boiler", service.ErrNoBoiler, "/boiler-consumption/2026/8", msgNoDevices},
		{"no consumption data", service.ErrNoConsumptionData, "/boiler-consumption/2026/8", msgNoConsumption},
		{"flow unavailable", service.ErrFlowTemperatureUnavailable, "/zone-flow-temperature/1", msgFlowUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tel := &mockTelemetry{err: tc.err}
			r := newTestRouter(&service.Service{Telemetry: tel})
			w := get(t, r, tc.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if got := errorBody(t, w); got != tc.msg {
				t.Fatalf("expected error %q, got %q", tc.msg, got)
			}
		})
	}
}

func TestVendorFailure_Returns502(t *testing.T) {
	tel := &mockTelemetry{err: errors.New("identity provider unreachable")}
	r := newTestRouter(&service.Service{Telemetry: tel})

	w := get(t, r, "/zones")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if got := errorBody(t, w); got != "identity provider unreachable" {
		t.Fatalf("unexpected error body: %q", got)
	}
}

func TestControlHandlers(t *testing.T) {
	ctl := &mockControl{message: "Zone Bedroom mode set to manual"}
	r := newTestRouter(&service.Service{Control: ctl})

	w := get(t, r, "/zone-update/1/manual")
	if w.Code != http.StatusOK {
		t.Fatalf("zone-update status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != ctl.message {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if ctl.modeCalls != 1 || ctl.lastIndex != 1 || ctl.lastMode != "manual" {
		t.Fatalf("mode call not forwarded: %+v", ctl)
	}

	ctl.message = "Temperature for zone Bedroom set to 19.5°C"
	w = get(t, r, "/zone-set-temp/1/19.5")
	if w.Code != http.StatusOK {
		t.Fatalf("zone-set-temp status=%d", w.Code)
	}
	if ctl.setpointCalls != 1 || ctl.lastSetpoint != 19.5 {
		t.Fatalf("setpoint call not forwarded: %+v", ctl)
	}
}

func TestControlHandlers_RecoveredErrors(t *testing.T) {
	ctl := &mockControl{err: service.ErrInvalidMode}
	r := newTestRouter(&service.Service{Control: ctl})

	w := get(t, r, "/zone-update/0/boost")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := errorBody(t, w); got != msgInvalidMode {
		t.Fatalf("expected %q, got %q", msgInvalidMode, got)
	}

	ctl.err = &service.ControlError{Zone: "Bedroom", Op: "update mode", Err: errors.New("status 500")}
	w = get(t, r, "/zone-update/1/manual")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := errorBody(t, w); got != ctl.err.Error() {
		t.Fatalf("expected %q, got %q", ctl.err.Error(), got)
	}
}

func TestHealthAndFavicon(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := get(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var body struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Status != "ok" {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}

	w = get(t, r, "/favicon.ico")
	if w.Code != http.StatusNoContent {
		t.Fatalf("favicon status=%d", w.Code)
	}
}
