package schedule

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
	api.GET("/horarios", h.ListHorarios)
	api.POST("/horarios", h.CreateHorario)
	api.GET("/horarios/:id", h.GetHorario)
	api.PUT("/horarios/:id", h.UpdateHorario)
	api.DELETE("/horarios/:id", h.DeleteHorario)
}

func horarioID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	return id, nil
}

func (h *Handler) ListHorarios(c echo.Context) error {
	items, err := h.svc.ListHorarios(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener horarios")
	}
	if items == nil {
		items = []*HorarioConUsuario{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetHorario(c echo.Context) error {
	id, err := horarioID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetHorario(c.Request().Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "horario no encontrado")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener horario")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateHorario(c echo.Context) error {
	var horario Horario
	if err := c.Bind(&horario); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateHorario(c.Request().Context(), &horario); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar horario")
	}
	return c.JSON(http.StatusOK, horario)
}

func (h *Handler) UpdateHorario(c echo.Context) error {
	id, err := horarioID(c)
	if err != nil {
		return err
	}
	var horario Horario
	if err := c.Bind(&horario); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	horario.ID = id
	if err := h.svc.UpdateHorario(c.Request().Context(), &horario); err != nil {
		if errors.Is(err, errInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "error al actualizar horario")
	}
	return c.JSON(http.StatusOK, horario)
}

func (h *Handler) DeleteHorario(c echo.Context) error {
	id, err := horarioID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteHorario(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al eliminar horario")
	}
	return c.NoContent(http.StatusNoContent)
}
