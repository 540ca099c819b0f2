package handler

import (
	"net/http"

	"restaurant/internal/config"
	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 在庫の管理系API。管理者のみ。
type IngredientHandler struct {
	uc *usecase.IngredientUsecase
}

func NewIngredientHandler(uc *usecase.IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

type IngredientCreateRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type IngredientUpdateRequest struct {
	Name     *string `json:"name"`
	Quantity *int64  `json:"quantity"`
}

func (h *IngredientHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/ingredients")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *IngredientHandler) create(c echo.Context) error {
	var req IngredientCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateIngredientInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *IngredientHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req IngredientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	staffID, _ := c.Get(middleware.CtxStaffIDKey).(int64)

	out, err := h.uc.Update(c.Request().Context(), staffID, id, usecase.UpdateIngredientInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
