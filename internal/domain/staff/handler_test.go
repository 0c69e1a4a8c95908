package staff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	svc, _, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Handler_Success(t *testing.T) {
	h, e := newTestHandler(t)
	crearUsuario(t, h.svc, "maria@clinica.com", "secreta123")

	c, rec := postJSON(e, "/login", `{"email":"maria@clinica.com","contrasena":"secreta123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token == "" || resp.Rol != "medico" || resp.UsuarioID == 0 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestLogin_Handler_GenericUnauthorized(t *testing.T) {
	h, e := newTestHandler(t)
	crearUsuario(t, h.svc, "maria@clinica.com", "secreta123")

	bodies := []string{
		`{"email":"maria@clinica.com","contrasena":"incorrecta"}`,
		`{"email":"nadie@clinica.com","contrasena":"secreta123"}`,
	}
	var mensajes []string
	for _, body := range bodies {
		c, _ := postJSON(e, "/login", body)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
		mensajes = append(mensajes, he.Message.(string))
	}
	if mensajes[0] != mensajes[1] {
		t.Errorf("expected identical messages for wrong password and unknown email, got %q vs %q",
			mensajes[0], mensajes[1])
	}
}

func TestRecuperarContrasena_Handler_UnknownEmail(t *testing.T) {
	h, e := newTestHandler(t)
	c, _ := postJSON(e, "/recuperar-contrasena", `{"email":"nadie@clinica.com"}`)
	err := h.RecuperarContrasena(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestCambiarContrasena_Handler_BadToken(t *testing.T) {
	h, e := newTestHandler(t)
	c, _ := postJSON(e, "/cambiar-contrasena", `{"token":"no.es.jwt","nueva_contrasena":"nueva456"}`)
	err := h.CambiarContrasena(c)
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestCreateUsuario_Handler_NoEchoesContrasena(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"nombre":"Maria","apellido":"Lopez","email":"maria@clinica.com",` +
		`"fecha_nacimiento":"1990-01-01T00:00:00Z","sexo":"F","rol_id":2,"contrasena":"secreta123"}`
	c, rec := postJSON(e, "/usuarios", body)

	if err := h.CreateUsuario(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secreta123") {
		t.Error("expected plaintext contrasena to be absent from response")
	}
	var got Usuario
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID == 0 {
		t.Error("expected id in response")
	}
}

func TestListUsuarios_Handler_JoinsRolNombre(t *testing.T) {
	h, e := newTestHandler(t)
	crearUsuario(t, h.svc, "maria@clinica.com", "secreta123")

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListUsuarios(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []UsuarioConRol
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].RolNombre != "medico" {
		t.Errorf("unexpected usuarios %+v", items)
	}
}
