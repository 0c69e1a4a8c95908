package record

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(pacienteIDs ...int) (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockExpedienteRepo(pacienteIDs...)))
	e := echo.New()
	return h, e
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestGetExpediente_Handler_NotFound(t *testing.T) {
	h, e := newTestHandler(1)
	req := httptest.NewRequest(http.MethodGet, "/expedientes/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")

	err := h.GetExpediente(c)
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestCreateExpediente_Handler_ThenGet(t *testing.T) {
	h, e := newTestHandler(1)

	req := httptest.NewRequest(http.MethodPost, "/expedientes/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")
	if err := h.CreateExpediente(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/expedientes/1", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")
	if err := h.GetExpediente(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Expediente
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.PacienteID != 1 {
		t.Errorf("expected paciente_id 1, got %d", got.PacienteID)
	}
}

func TestCreateExpediente_Handler_Duplicate(t *testing.T) {
	h, e := newTestHandler(1)

	for i, want := range []int{http.StatusOK, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/expedientes/1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("paciente_id")
		c.SetParamValues("1")

		err := h.CreateExpediente(c)
		got := rec.Code
		if err != nil {
			got = httpStatus(t, err)
		}
		if got != want {
			t.Errorf("attempt %d: expected %d, got %d", i+1, want, got)
		}
	}
}

func TestCreateDiagnostico_Handler_SinExpediente(t *testing.T) {
	h, e := newTestHandler(1)
	body := `{"diagnostico":"gripe","tratamiento":"reposo"}`
	req := httptest.NewRequest(http.MethodPost, "/expedientes/1/diagnosticos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")

	err := h.CreateDiagnostico(c)
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestCreateDiagnostico_Handler_Success(t *testing.T) {
	h, e := newTestHandler(1)
	if _, err := h.svc.CreateExpediente(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"diagnostico":"gripe","tratamiento":"reposo"}`
	req := httptest.NewRequest(http.MethodPost, "/expedientes/1/diagnosticos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")

	if err := h.CreateDiagnostico(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Diagnostico
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID == 0 || got.FechaRegistro.IsZero() {
		t.Errorf("expected assigned id and fecha_registro, got %+v", got)
	}
}

func TestListDiagnosticos_Handler_SinExpediente(t *testing.T) {
	h, e := newTestHandler(1)
	req := httptest.NewRequest(http.MethodGet, "/expedientes/1/diagnosticos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")

	err := h.ListDiagnosticos(c)
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404 for patient without expediente, got %d", code)
	}
}

func TestListDiagnosticos_Handler_ExpedienteVacioIsArray(t *testing.T) {
	h, e := newTestHandler(1)
	if _, err := h.svc.CreateExpediente(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/expedientes/1/diagnosticos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("paciente_id")
	c.SetParamValues("1")

	if err := h.ListDiagnosticos(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
