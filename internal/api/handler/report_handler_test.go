package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/swdsms/incident-api/internal/core/domain"
	"github.com/swdsms/incident-api/internal/core/ports"
)

type stubReportService struct {
	listFn   func(ctx context.Context) ([]domain.Report, error)
	createFn func(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error)
	solveFn  func(ctx context.Context, id int64) (*domain.Report, error)
}

func (s *stubReportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	return s.listFn(ctx)
}

func (s *stubReportService) CreateReport(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error) {
	return s.createFn(ctx, input)
}

func (s *stubReportService) SolveReport(ctx context.Context, id int64) (*domain.Report, error) {
	return s.solveFn(ctx, id)
}

func pendingReport(id int64) *domain.Report {
	return &domain.Report{
		ID: id, Name: "Jane", Grade: "5", Type: "Bullying",
		Description: "desc", Status: domain.StatusPending, Date: "2024-01-01",
	}
}

func TestReportHandler_Create_DualCasedKeys(t *testing.T) {
	var got ports.CreateReportInput
	stub := &stubReportService{
		createFn: func(_ context.Context, input ports.CreateReportInput) (*domain.Report, error) {
			got = input
			return pendingReport(1), nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/reports",
		`{"Name":"Jane","grade":"5","Type":"Bullying","description":"desc","Date":"2024-01-01"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Name != "Jane" || got.Grade != "5" || got.Type != "Bullying" || got.Date != "2024-01-01" {
		t.Fatalf("normalization lost fields: %+v", got)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "Pending" {
		t.Fatalf("new report status = %v, want Pending", resp["status"])
	}
}

func TestReportHandler_Create_ClientStatusIgnored(t *testing.T) {
	stub := &stubReportService{
		createFn: func(_ context.Context, input ports.CreateReportInput) (*domain.Report, error) {
			// The input carries no status at all; the service forces
			// Pending regardless of what the client sent.
			return pendingReport(1), nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/reports",
		`{"name":"Jane","grade":"5","type":"Bullying","description":"desc","date":"2024-01-01","status":"Solved"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["status"] != "Pending" {
		t.Fatalf("client-supplied status leaked through: %v", resp["status"])
	}
}

func TestReportHandler_Create_NumericGrade(t *testing.T) {
	var got ports.CreateReportInput
	stub := &stubReportService{
		createFn: func(_ context.Context, input ports.CreateReportInput) (*domain.Report, error) {
			got = input
			return pendingReport(1), nil
		},
	}
	h := NewReportHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/reports",
		`{"name":"Jane","grade":5,"type":"Bullying","description":"desc","date":"2024-01-01"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Grade != "5" {
		t.Fatalf("numeric grade coerced to %q, want \"5\"", got.Grade)
	}
}

func TestReportHandler_Create_MissingFields(t *testing.T) {
	stub := &stubReportService{
		createFn: func(context.Context, ports.CreateReportInput) (*domain.Report, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewReportHandler(stub)

	bodies := []string{
		`{"grade":"5","type":"Bullying","description":"desc","date":"2024-01-01"}`,
		// Zero and empty values count as missing.
		`{"name":"Jane","grade":0,"type":"Bullying","description":"desc","date":"2024-01-01"}`,
		`{"name":"","grade":"5","type":"Bullying","description":"desc","date":"2024-01-01"}`,
		`{"name":"Jane","grade":"5","type":"Bullying","description":"desc","date":null}`,
	}
	for _, body := range bodies {
		c, rec := newTestContext(t, http.MethodPost, "/api/reports", body)
		_ = h.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: code = %d, want 400", body, rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "Missing required fields" {
			t.Errorf("body %s: error = %v", body, resp["error"])
		}
	}
}

func TestReportHandler_Solve_Success(t *testing.T) {
	var gotID int64
	stub := &stubReportService{
		solveFn: func(_ context.Context, id int64) (*domain.Report, error) {
			gotID = id
			r := pendingReport(id)
			r.Status = domain.StatusSolved
			return r, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/reports/42/solve", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.Solve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Fatalf("service called with id %d, want 42", gotID)
	}
	if resp := decodeBody(t, rec); resp["status"] != "Solved" {
		t.Fatalf("status = %v, want Solved", resp["status"])
	}
}

func TestReportHandler_Solve_NonNumericID(t *testing.T) {
	var gotID int64 = -1
	stub := &stubReportService{
		solveFn: func(_ context.Context, id int64) (*domain.Report, error) {
			gotID = id
			return nil, domain.ErrReportNotFound
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/reports/abc/solve", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	_ = h.Solve(c)

	// Garbage parses to 0, which matches no row: not-found, not a 400.
	if gotID != 0 {
		t.Fatalf("service called with id %d, want 0", gotID)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Report not found" {
		t.Fatalf("unexpected error: %v", resp["error"])
	}
}

func TestReportHandler_List(t *testing.T) {
	stub := &stubReportService{
		listFn: func(context.Context) ([]domain.Report, error) {
			return []domain.Report{*pendingReport(1), *pendingReport(2)}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/reports", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var reports []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0]["id"] != float64(1) || reports[1]["id"] != float64(2) {
		t.Fatalf("unexpected ordering: %v", reports)
	}
}

func TestReportHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubReportService{
		listFn: func(context.Context) ([]domain.Report, error) {
			return []domain.Report{}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/reports", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var reports []any
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("expected a JSON array, got %q: %v", rec.Body.String(), err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected empty array, got %v", reports)
	}
}
