package patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cliniclab/cliniclab/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/pacientes", h.ListPacientes)
	api.POST("/pacientes", h.CreatePaciente)
	api.GET("/pacientes/:id", h.GetPaciente)
	api.PUT("/pacientes/:id", h.UpdatePaciente)
	api.DELETE("/pacientes/:id", h.DeletePaciente)
}

func (h *Handler) ListPacientes(c echo.Context) error {
	items, err := h.svc.ListPacientes(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener pacientes")
	}
	if items == nil {
		items = []*PacienteConEdad{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetPaciente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	p, err := h.svc.GetPaciente(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, p)
	case db.IsUniqueViolation(err):
		return echo.NewHTTPError(http.StatusConflict, "paciente duplicado")
	default:
		return echo.NewHTTPError(http.StatusNotFound, "paciente no encontrado")
	}
}

func (h *Handler) CreatePaciente(c echo.Context) error {
	var p Paciente
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePaciente(c.Request().Context(), &p); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar paciente")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePaciente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	var p Paciente
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdatePaciente(c.Request().Context(), &p); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al actualizar paciente")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePaciente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	if err := h.svc.DeletePaciente(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al eliminar paciente")
	}
	return c.NoContent(http.StatusNoContent)
}
