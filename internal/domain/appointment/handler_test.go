package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(NewService(newMockCitaRepo())), echo.New()
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestCreateCita_Handler_Success(t *testing.T) {
	h, e := newTestHandler()
	body := `{"paciente_id":1,"usuario_id":2,"fecha_hora":"2025-07-01T09:30:00Z",` +
		`"estado":"pendiente","motivo":"control"}`
	req := httptest.NewRequest(http.MethodPost, "/citas", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateCita(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Cita
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID == 0 {
		t.Error("expected id in response")
	}
}

func TestCreateCita_Handler_EstadoInvalido(t *testing.T) {
	h, e := newTestHandler()
	body := `{"paciente_id":1,"usuario_id":2,"fecha_hora":"2025-07-01T09:30:00Z","estado":"tal vez"}`
	req := httptest.NewRequest(http.MethodPost, "/citas", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateCita(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestGetCita_Handler_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/citas/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.GetCita(c)
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestDeleteCita_Handler_NoContent(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/citas/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteCita(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
