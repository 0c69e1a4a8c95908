package record

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
	api.GET("/expedientes/:paciente_id", h.GetExpediente)
	api.POST("/expedientes/:paciente_id", h.CreateExpediente)
	api.GET("/expedientes/:paciente_id/diagnosticos", h.ListDiagnosticos)
	api.POST("/expedientes/:paciente_id/diagnosticos", h.CreateDiagnostico)
}

func pacienteID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("paciente_id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "paciente_id invalido")
	}
	return id, nil
}

func (h *Handler) GetExpediente(c echo.Context) error {
	id, err := pacienteID(c)
	if err != nil {
		return err
	}
	e, err := h.svc.GetExpediente(c.Request().Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "expediente no encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener expediente")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateExpediente(c echo.Context) error {
	id, err := pacienteID(c)
	if err != nil {
		return err
	}
	e, err := h.svc.CreateExpediente(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, e)
	case db.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, "paciente no encontrado")
	case db.IsUniqueViolation(err):
		return echo.NewHTTPError(http.StatusConflict, "el paciente ya tiene expediente")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "error al crear expediente")
	}
}

func (h *Handler) ListDiagnosticos(c echo.Context) error {
	id, err := pacienteID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListDiagnosticos(c.Request().Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "expediente no encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener diagnosticos")
	}
	if items == nil {
		items = []*Diagnostico{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateDiagnostico(c echo.Context) error {
	id, err := pacienteID(c)
	if err != nil {
		return err
	}
	var d Diagnostico
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDiagnostico(c.Request().Context(), id, &d); err != nil {
		switch {
		case errors.Is(err, errInvalid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case db.IsNotFound(err):
			return echo.NewHTTPError(http.StatusNotFound, "expediente no encontrado")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar diagnostico")
		}
	}
	return c.JSON(http.StatusOK, d)
}
