package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/internal/app/server"
	"hrms/internal/platform/config"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *apiError       `json:"error"`
	RequestID string          `json:"requestId"`
}

type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		JWTSecret:          "test-secret",
		Environment:        "test",
		TokenTTL:           time.Hour,
		CompanyTimezone:    "Asia/Kolkata",
		CORSOrigins:        "*",
		MaxBodyBytes:       1048576,
		LoginRatePerMinute: 1000,
		MetricsEnabled:     true,
	}
}

func startApp(t *testing.T) *httptest.Server {
	t.Helper()

	app, err := server.New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func login(t *testing.T, ts *httptest.Server, identifier, password string) string {
	t.Helper()

	status, out := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if status != http.StatusOK {
		t.Fatalf("login(%q) returned %d: %+v", identifier, status, out.Error)
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(out.Data, &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if session.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return session.Token
}

func fetchRaw(t *testing.T, ts *httptest.Server, path, token string) (int, http.Header, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, resp.Header, raw
}

func TestLoginIdentifierNormalization(t *testing.T) {
	ts := startApp(t)

	for _, identifier := range []string{"ADMIN001", " admin001 ", "admin@company.com", "Admin@Company.com"} {
		login(t, ts, identifier, "password")
	}
}

func TestLoginFailureShapesMatch(t *testing.T) {
	ts := startApp(t)

	status, wrongPassword := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": "admin001", "password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", status)
	}

	status, unknownUser := doJSON(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"identifier": "ghost", "password": "password",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", status)
	}

	if wrongPassword.Error == nil || unknownUser.Error == nil ||
		wrongPassword.Error.Code != unknownUser.Error.Code ||
		wrongPassword.Error.Message != unknownUser.Error.Message {
		t.Fatalf("failure shapes must match: %+v vs %+v", wrongPassword.Error, unknownUser.Error)
	}
}

func TestAnonymousRequestsAreRejected(t *testing.T) {
	ts := startApp(t)

	for _, path := range []string{"/api/v1/auth/me", "/api/v1/dashboard", "/api/v1/leave/balances", "/api/v1/projects/"} {
		status, out := doJSON(t, ts, http.MethodGet, path, "", nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("GET %s without token: expected 401, got %d (%+v)", path, status, out.Error)
		}
	}
}

func TestNavigationVariesByRole(t *testing.T) {
	ts := startApp(t)

	menuNames := func(token string) []string {
		status, out := doJSON(t, ts, http.MethodGet, "/api/v1/navigation", token, nil)
		if status != http.StatusOK {
			t.Fatalf("navigation returned %d", status)
		}
		var entries []struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(out.Data, &entries); err != nil {
			t.Fatalf("decode navigation: %v", err)
		}
		var names []string
		for _, entry := range entries {
			names = append(names, entry.Name)
		}
		return names
	}

	adminMenu := menuNames(login(t, ts, "admin001", "password"))
	wantAdmin := []string{"Dashboard", "Attendance", "Leave", "Projects", "Payroll", "Employees", "Profile", "Settings"}
	if len(adminMenu) != len(wantAdmin) {
		t.Fatalf("admin menu mismatch: %v", adminMenu)
	}
	for i := range wantAdmin {
		if adminMenu[i] != wantAdmin[i] {
			t.Fatalf("admin menu order mismatch at %d: %v", i, adminMenu)
		}
	}

	employeeMenu := menuNames(login(t, ts, "emp001", "password"))
	for _, name := range employeeMenu {
		if name == "Payroll" || name == "Employees" {
			t.Fatalf("employee menu must not contain %s: %v", name, employeeMenu)
		}
	}
}

func TestRoleGuards(t *testing.T) {
	ts := startApp(t)

	adminToken := login(t, ts, "admin001", "password")
	managerToken := login(t, ts, "manager001", "password")
	employeeToken := login(t, ts, "emp001", "password")

	cases := []struct {
		name   string
		token  string
		path   string
		expect int
	}{
		{"employee payroll", employeeToken, "/api/v1/payroll/", http.StatusForbidden},
		{"manager payroll", managerToken, "/api/v1/payroll/", http.StatusForbidden},
		{"admin payroll", adminToken, "/api/v1/payroll/", http.StatusOK},
		{"employee directory", employeeToken, "/api/v1/employees", http.StatusForbidden},
		{"manager directory", managerToken, "/api/v1/employees", http.StatusOK},
		{"admin directory", adminToken, "/api/v1/employees", http.StatusOK},
	}
	for _, tc := range cases {
		status, out := doJSON(t, ts, http.MethodGet, tc.path, tc.token, nil)
		if status != tc.expect {
			t.Fatalf("%s: expected %d, got %d (%+v)", tc.name, tc.expect, status, out.Error)
		}
	}
}

func TestProjectLifecycle(t *testing.T) {
	ts := startApp(t)
	managerToken := login(t, ts, "manager001", "password")

	// A draft missing fields is rejected with per-field messages.
	status, out := doJSON(t, ts, http.MethodPost, "/api/v1/projects/", managerToken, map[string]any{
		"project_name": "", "duration_days": 0,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("invalid draft: expected 422, got %d", status)
	}
	if out.Error == nil || out.Error.Details["project_name"] == "" || out.Error.Details["employees"] == "" {
		t.Fatalf("expected field details, got %+v", out.Error)
	}

	status, out = doJSON(t, ts, http.MethodPost, "/api/v1/projects/", managerToken, map[string]any{
		"project_name":       "Intranet Revamp",
		"start_date":         "2026-10-01",
		"duration_days":      30,
		"assigned_employees": []string{"3", "4"},
		"description":        "Refresh the intranet portal",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%+v)", status, out.Error)
	}

	var created struct {
		ID      string `json:"project_id"`
		EndDate string `json:"end_date"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(out.Data, &created); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if created.Status != "upcoming" {
		t.Fatalf("expected default status upcoming, got %s", created.Status)
	}
	if created.EndDate[:10] != "2026-10-30" {
		t.Fatalf("expected derived end date 2026-10-30, got %s", created.EndDate)
	}

	// Assigned employee can read it, an unassigned one cannot.
	employeeToken := login(t, ts, "emp001", "password")
	if status, _ := doJSON(t, ts, http.MethodGet, "/api/v1/projects/"+created.ID, employeeToken, nil); status != http.StatusOK {
		t.Fatalf("assigned employee read: expected 200, got %d", status)
	}
	outsiderToken := login(t, ts, "emp004", "password")
	if status, _ := doJSON(t, ts, http.MethodGet, "/api/v1/projects/"+created.ID, outsiderToken, nil); status != http.StatusForbidden {
		t.Fatalf("unassigned employee read: expected 403, got %d", status)
	}

	// Employees cannot mutate.
	if status, _ := doJSON(t, ts, http.MethodPost, "/api/v1/projects/"+created.ID+"/complete", employeeToken, nil); status != http.StatusForbidden {
		t.Fatalf("employee complete: expected 403, got %d", status)
	}

	status, out = doJSON(t, ts, http.MethodPost, "/api/v1/projects/"+created.ID+"/complete", managerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d (%+v)", status, out.Error)
	}
	var completed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(out.Data, &completed); err != nil {
		t.Fatalf("decode completed: %v", err)
	}
	if completed.Status != "completed" {
		t.Fatalf("expected completed, got %s", completed.Status)
	}
}

func TestLeaveRequestJourney(t *testing.T) {
	ts := startApp(t)

	employeeToken := login(t, ts, "emp001", "password")
	managerToken := login(t, ts, "manager001", "password")

	balanceFor := func(token, leaveType string) (total, used, available int) {
		status, out := doJSON(t, ts, http.MethodGet, "/api/v1/leave/balances", token, nil)
		if status != http.StatusOK {
			t.Fatalf("balances returned %d", status)
		}
		var balances []struct {
			Type      string `json:"type"`
			Total     int    `json:"total"`
			Used      int    `json:"used"`
			Available int    `json:"available"`
		}
		if err := json.Unmarshal(out.Data, &balances); err != nil {
			t.Fatalf("decode balances: %v", err)
		}
		for _, balance := range balances {
			if balance.Type == leaveType {
				return balance.Total, balance.Used, balance.Available
			}
		}
		t.Fatalf("no %s balance found", leaveType)
		return 0, 0, 0
	}

	_, usedBefore, _ := balanceFor(employeeToken, "EL")

	status, out := doJSON(t, ts, http.MethodPost, "/api/v1/leave/requests", employeeToken, map[string]string{
		"type": "EL", "startDate": "2026-10-05", "endDate": "2026-10-06", "reason": "Errand",
	})
	if status != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%+v)", status, out.Error)
	}
	var request struct {
		ID     string `json:"id"`
		Days   int    `json:"days"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(out.Data, &request); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if request.Days != 2 || request.Status != "pending" {
		t.Fatalf("expected 2-day pending request, got %+v", request)
	}

	// Submission alone must not move the balance.
	if _, used, _ := balanceFor(employeeToken, "EL"); used != usedBefore {
		t.Fatalf("balance moved on submission: used %d -> %d", usedBefore, used)
	}

	// Employees cannot approve; managers can.
	if status, _ := doJSON(t, ts, http.MethodPost, "/api/v1/leave/requests/"+request.ID+"/approve", employeeToken, nil); status != http.StatusForbidden {
		t.Fatalf("employee approve: expected 403, got %d", status)
	}
	if status, out := doJSON(t, ts, http.MethodPost, "/api/v1/leave/requests/"+request.ID+"/approve", managerToken, nil); status != http.StatusOK {
		t.Fatalf("manager approve: expected 200, got %d (%+v)", status, out.Error)
	}

	if _, used, _ := balanceFor(employeeToken, "EL"); used != usedBefore+2 {
		t.Fatalf("approval must charge the balance: used %d, want %d", used, usedBefore+2)
	}

	// A second decision on the same request conflicts.
	if status, _ := doJSON(t, ts, http.MethodPost, "/api/v1/leave/requests/"+request.ID+"/reject", managerToken, nil); status != http.StatusConflict {
		t.Fatalf("double decision: expected 409, got %d", status)
	}

	// Requests beyond the available balance are refused outright.
	status, out = doJSON(t, ts, http.MethodPost, "/api/v1/leave/requests", employeeToken, map[string]string{
		"type": "EL", "startDate": "2026-11-01", "endDate": "2026-11-30", "reason": "Sabbatical",
	})
	if status != http.StatusUnprocessableEntity || out.Error == nil || out.Error.Code != "insufficient_balance" {
		t.Fatalf("oversized request: expected 422 insufficient_balance, got %d (%+v)", status, out.Error)
	}
}

func TestSettingsTimezoneUpdate(t *testing.T) {
	ts := startApp(t)
	token := login(t, ts, "emp001", "password")

	status, out := doJSON(t, ts, http.MethodPut, "/api/v1/settings", token, map[string]string{"timezone": "Not/AZone"})
	if status != http.StatusUnprocessableEntity || out.Error == nil || out.Error.Details["timezone"] == "" {
		t.Fatalf("invalid zone: expected 422 with detail, got %d (%+v)", status, out.Error)
	}

	if status, out := doJSON(t, ts, http.MethodPut, "/api/v1/settings", token, map[string]string{"timezone": "Europe/Berlin"}); status != http.StatusOK {
		t.Fatalf("valid zone: expected 200, got %d (%+v)", status, out.Error)
	}

	status, out = doJSON(t, ts, http.MethodGet, "/api/v1/settings", token, nil)
	if status != http.StatusOK {
		t.Fatalf("get settings returned %d", status)
	}
	var settings struct {
		Timezone        string `json:"timezone"`
		CompanyTimezone string `json:"companyTimezone"`
	}
	if err := json.Unmarshal(out.Data, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.Timezone != "Europe/Berlin" {
		t.Fatalf("expected persisted zone Europe/Berlin, got %s", settings.Timezone)
	}
	if settings.CompanyTimezone != "Asia/Kolkata" {
		t.Fatalf("company zone must not change, got %s", settings.CompanyTimezone)
	}
}

func TestExportsAndPayslip(t *testing.T) {
	ts := startApp(t)
	adminToken := login(t, ts, "admin001", "password")

	status, headers, raw := fetchRaw(t, ts, "/api/v1/attendance/export", adminToken)
	if status != http.StatusOK {
		t.Fatalf("attendance export returned %d", status)
	}
	if len(raw) < 2 || raw[0] != 'P' || raw[1] != 'K' {
		t.Fatal("attendance export is not a zip container")
	}
	if headers.Get("Content-Disposition") == "" {
		t.Fatal("attendance export missing attachment disposition")
	}

	status, _, raw = fetchRaw(t, ts, "/api/v1/payroll/export", adminToken)
	if status != http.StatusOK {
		t.Fatalf("payroll export returned %d", status)
	}
	if len(raw) < 2 || raw[0] != 'P' || raw[1] != 'K' {
		t.Fatal("payroll export is not a zip container")
	}

	status, headers, raw = fetchRaw(t, ts, "/api/v1/payroll/pay2/payslip", adminToken)
	if status != http.StatusOK {
		t.Fatalf("payslip returned %d", status)
	}
	if len(raw) < 4 || string(raw[:4]) != "%PDF" {
		t.Fatal("payslip is not a PDF")
	}
	if headers.Get("Content-Type") != "application/pdf" {
		t.Fatalf("payslip content type %s", headers.Get("Content-Type"))
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := startApp(t)
	token := login(t, ts, "emp001", "password")

	if status, _ := doJSON(t, ts, http.MethodGet, "/api/v1/auth/me", token, nil); status != http.StatusOK {
		t.Fatalf("me before logout: expected 200, got %d", status)
	}

	if status, _ := doJSON(t, ts, http.MethodPost, "/api/v1/auth/logout", token, nil); status != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", status)
	}

	if status, _ := doJSON(t, ts, http.MethodGet, "/api/v1/auth/me", token, nil); status != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", status)
	}
}

func TestDashboardShapesByRole(t *testing.T) {
	ts := startApp(t)

	adminToken := login(t, ts, "admin001", "password")
	status, out := doJSON(t, ts, http.MethodGet, "/api/v1/dashboard", adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("admin dashboard returned %d", status)
	}
	var adminDash map[string]json.RawMessage
	if err := json.Unmarshal(out.Data, &adminDash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if _, ok := adminDash["stats"]; !ok {
		t.Fatal("admin dashboard missing stats")
	}
	if _, ok := adminDash["pendingApprovals"]; !ok {
		t.Fatal("admin dashboard missing pendingApprovals")
	}

	var stats struct {
		TotalEmployees int `json:"totalEmployees"`
		PresentToday   int `json:"presentToday"`
	}
	if err := json.Unmarshal(adminDash["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalEmployees != 6 {
		t.Fatalf("expected 6 employees, got %d", stats.TotalEmployees)
	}
	if stats.PresentToday != 4 {
		t.Fatalf("expected 4 present (incl. wfh), got %d", stats.PresentToday)
	}

	employeeToken := login(t, ts, "emp001", "password")
	status, out = doJSON(t, ts, http.MethodGet, "/api/v1/dashboard", employeeToken, nil)
	if status != http.StatusOK {
		t.Fatalf("employee dashboard returned %d", status)
	}
	var employeeDash map[string]json.RawMessage
	if err := json.Unmarshal(out.Data, &employeeDash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if _, ok := employeeDash["stats"]; ok {
		t.Fatal("employee dashboard must not expose company stats")
	}
	if _, ok := employeeDash["leaveBalances"]; !ok {
		t.Fatal("employee dashboard missing leaveBalances")
	}
}
