package exam

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

// RegisterRoutes splits the catalog reads, which any client may consult, from
// the per-diagnosis results, which require a session.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.GET("/perfiles_examenes", h.ListPerfiles)
	public.GET("/examenes", h.ListExamenes)
	public.GET("/examenes_por_perfil/:id", h.ListExamenesByPerfil)

	api.GET("/examenes_por_diagnostico/:diagnostico_id", h.ListResultados)
	api.POST("/examenes_por_diagnostico/:diagnostico_id", h.AddResultados)
}

func (h *Handler) ListPerfiles(c echo.Context) error {
	items, err := h.svc.ListPerfiles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener perfiles")
	}
	if items == nil {
		items = []*PerfilExamen{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListExamenes(c echo.Context) error {
	items, err := h.svc.ListExamenes(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener examenes")
	}
	if items == nil {
		items = []*Examen{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListExamenesByPerfil(c echo.Context) error {
	perfilID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id invalido")
	}
	items, err := h.svc.ListExamenesByPerfil(c.Request().Context(), perfilID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener examenes")
	}
	if items == nil {
		items = []*Examen{}
	}
	return c.JSON(http.StatusOK, items)
}

func diagnosticoID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("diagnostico_id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "diagnostico_id invalido")
	}
	return id, nil
}

func (h *Handler) ListResultados(c echo.Context) error {
	id, err := diagnosticoID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListResultados(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error al obtener resultados")
	}
	if items == nil {
		items = []*ResultadoConExamen{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddResultados(c echo.Context) error {
	id, err := diagnosticoID(c)
	if err != nil {
		return err
	}
	var items []ResultadoExamen
	if err := c.Bind(&items); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AddResultados(c.Request().Context(), id, items); err != nil {
		switch {
		case errors.Is(err, errInvalid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case db.IsNotFound(err):
			return echo.NewHTTPError(http.StatusNotFound, "diagnostico no encontrado")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "error al registrar resultados")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"mensaje": "resultados registrados"})
}
