package handler

import (
	"net/http"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/middleware"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// プロモコードの管理API。管理者のみ。
type PromoCodeHandler struct {
	uc *usecase.PromoCodeUsecase
}

func NewPromoCodeHandler(uc *usecase.PromoCodeUsecase) *PromoCodeHandler {
	return &PromoCodeHandler{uc: uc}
}

type PromoCodeCreateRequest struct {
	Code               string `json:"code"`
	DiscountPercentage int64  `json:"discount_percentage"`
	ExpirationDate     string `json:"expiration_date"` // RFC3339
}

func (h *PromoCodeHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/promo-codes")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.GET("", h.list)
	g.POST("/:code/deactivate", h.deactivate)
}

func (h *PromoCodeHandler) create(c echo.Context) error {
	var req PromoCodeCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	exp, err := time.Parse(time.RFC3339, req.ExpirationDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid expiration_date"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreatePromoCodeInput{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		ExpirationDate:     exp,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PromoCodeHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PromoCodeHandler) deactivate(c echo.Context) error {
	out, err := h.uc.Deactivate(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
