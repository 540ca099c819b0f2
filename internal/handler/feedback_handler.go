package handler

import (
	"net/http"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	uc *usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

type FeedbackCreateRequest struct {
	CustomerID int64  `json:"customer_id"`
	OrderID    int64  `json:"order_id"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments"`
}

func (h *FeedbackHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/feedback", h.create)
	e.GET("/orders/:id/feedback", h.listByOrder)
}

func (h *FeedbackHandler) create(c echo.Context) error {
	var req FeedbackCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateFeedbackInput{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Rating:     req.Rating,
		Comments:   req.Comments,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FeedbackHandler) listByOrder(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListByOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
