package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/models"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/internal/service"
)

// AdminHandler serves the back-office surface: accept/reject choreography
// and menu management.
type AdminHandler struct {
	acceptance service.AcceptanceService
	menus      service.MenuService
	events     repository.ChefEventRepository
}

func NewAdminHandler(acceptance service.AcceptanceService, menus service.MenuService, events repository.ChefEventRepository) *AdminHandler {
	return &AdminHandler{acceptance: acceptance, menus: menus, events: events}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.GET("/chef-events", h.ListChefEvents)
	admin.GET("/chef-events/:id", h.GetChefEvent)
	admin.POST("/chef-events/:id/accept", h.AcceptChefEvent)
	admin.POST("/chef-events/:id/reject", h.RejectChefEvent)

	admin.POST("/menus", h.CreateMenu)
	admin.GET("/menus", h.ListMenus)
	admin.GET("/menus/:id", h.GetMenu)
	admin.DELETE("/menus/:id", h.DeleteMenu)
}

func (h *AdminHandler) ListChefEvents(c echo.Context) error {
	var status *models.EventStatus
	if s := c.QueryParam("status"); s != "" {
		es := models.EventStatus(s)
		status = &es
	}

	events, err := h.events.FindAll(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ChefEventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToChefEventResponse(&e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetChefEvent(c echo.Context) error {
	event, err := h.events.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "chef event not found")
	}
	return c.JSON(http.StatusOK, dto.ToChefEventResponse(event))
}

func (h *AdminHandler) AcceptChefEvent(c echo.Context) error {
	event, err := h.acceptance.AcceptEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return transitionError(err)
	}

	return c.JSON(http.StatusOK, dto.AcceptEventEnvelope{
		Message: "Event accepted",
		Event:   dto.ToChefEventResponse(event),
	})
}

func (h *AdminHandler) RejectChefEvent(c echo.Context) error {
	event, err := h.acceptance.RejectEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return transitionError(err)
	}

	return c.JSON(http.StatusOK, dto.AcceptEventEnvelope{
		Message: "Event rejected",
		Event:   dto.ToChefEventResponse(event),
	})
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEventNotPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTemplateProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *AdminHandler) CreateMenu(c echo.Context) error {
	var req dto.CreateMenuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	menu, err := h.menus.CreateMenu(c.Request().Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return err
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, menu)
}

func (h *AdminHandler) ListMenus(c echo.Context) error {
	menus, err := h.menus.ListMenus(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, menus)
}

func (h *AdminHandler) GetMenu(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu id")
	}

	menu, err := h.menus.GetMenu(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *AdminHandler) DeleteMenu(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu id")
	}

	if err := h.menus.DeleteMenu(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
