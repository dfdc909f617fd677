package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/service"
)

// StoreHandler serves the customer-facing surface: event request intake
// and the public menu catalog.
type StoreHandler struct {
	intake service.IntakeService
	menus  service.MenuService
}

func NewStoreHandler(intake service.IntakeService, menus service.MenuService) *StoreHandler {
	return &StoreHandler{intake: intake, menus: menus}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	store := e.Group("/store")
	store.POST("/chef-events", h.CreateChefEvent)
	store.GET("/menus", h.ListMenus)
	store.GET("/menus/:id", h.GetMenu)
}

func (h *StoreHandler) CreateChefEvent(c echo.Context) error {
	var req dto.CreateChefEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	event, err := h.intake.CreateEventRequest(c.Request().Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return err // central handler renders field errors as a 400
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ChefEventEnvelope{
		ChefEvent: dto.ToChefEventResponse(event),
		Message:   "Event request received. We'll confirm availability shortly.",
	})
}

func (h *StoreHandler) ListMenus(c echo.Context) error {
	menus, err := h.menus.ListMenusCached(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, menus)
}

func (h *StoreHandler) GetMenu(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid menu id")
	}

	menu, err := h.menus.GetMenuCached(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, menu)
}
