package appointment

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
	api.GET("/citas", h.ListCitas)
	api.POST("/citas", h.CreateCita)
	api.GET("/citas/:id", h.GetCita)
	api.PUT("/citas/:id", h.UpdateCita)
	api.DELETE("/citas/:id", h.DeleteCita)
}

func citaID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	return id, nil
}

func (h *Handler) ListCitas(c echo.Context) error {
	items, err := h.svc.ListCitas(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener citas")
	}
	if items == nil {
		items = []*CitaDetalle{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCita(c echo.Context) error {
	id, err := citaID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetCita(c.Request().Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "cita no encontrada")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener cita")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateCita(c echo.Context) error {
	var cita Cita
	if err := c.Bind(&cita); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateCita(c.Request().Context(), &cita); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar cita")
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) UpdateCita(c echo.Context) error {
	id, err := citaID(c)
	if err != nil {
		return err
	}
	var cita Cita
	if err := c.Bind(&cita); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cita.ID = id
	if err := h.svc.UpdateCita(c.Request().Context(), &cita); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al actualizar cita")
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) DeleteCita(c echo.Context) error {
	id, err := citaID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteCita(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al eliminar cita")
	}
	return c.NoContent(http.StatusNoContent)
}
