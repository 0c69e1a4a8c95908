package staff

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cliniclab/cliniclab/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.POST("/login", h.Login)
	public.POST("/recuperar-contrasena", h.RecuperarContrasena)
	public.POST("/cambiar-contrasena", h.CambiarContrasena)

	api.GET("/usuarios", h.ListUsuarios)
	api.POST("/usuarios", h.CreateUsuario)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.Login(c.Request().Context(), req.Email, req.Contrasena)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "credenciales invalidas")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al iniciar sesion")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) RecuperarContrasena(c echo.Context) error {
	var req RecuperarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.RequestRecovery(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, "email no registrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al procesar la solicitud")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"mensaje": "se ha enviado un token de recuperacion al correo registrado",
	})
}

func (h *Handler) CambiarContrasena(c echo.Context) error {
	var req CambiarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.NuevaContrasena == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "nueva_contrasena es requerida")
	}
	if err := h.svc.CompleteRecovery(c.Request().Context(), req.Token, req.NuevaContrasena); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "token invalido o expirado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al actualizar la contrasena")
	}
	return c.JSON(http.StatusOK, map[string]string{"mensaje": "contrasena actualizada"})
}

func (h *Handler) ListUsuarios(c echo.Context) error {
	items, err := h.svc.ListUsuarios(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener usuarios")
	}
	if items == nil {
		items = []*UsuarioConRol{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateUsuario(c echo.Context) error {
	var u Usuario
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateUsuario(c.Request().Context(), &u); err != nil {
		switch {
		case errors.Is(err, errInvalid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case db.IsUniqueViolation(err):
			return echo.NewHTTPError(http.StatusConflict, "el email ya esta registrado")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar usuario")
		}
	}
	return c.JSON(http.StatusOK, u)
}
