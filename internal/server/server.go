package server

import (
	"restaurant/internal/config"
	"restaurant/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Ingredient *handler.IngredientHandler
	Product    *handler.ProductHandler
	Order      *handler.OrderHandler
	PromoCode  *handler.PromoCodeHandler
	Customer   *handler.CustomerHandler
	Feedback   *handler.FeedbackHandler
	Report     *handler.ReportHandler
}

// New はechoを組み立ててルートを登録する。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	h.Auth.RegisterRoutes(e)
	h.Ingredient.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e)
	h.PromoCode.RegisterRoutes(e, cfg)
	h.Customer.RegisterRoutes(e)
	h.Feedback.RegisterRoutes(e)
	h.Report.RegisterRoutes(e)

	return e
}
