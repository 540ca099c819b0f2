package handler

import (
	"net/http"
	"time"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 集計系API（期間指定の注文一覧と日次売上）
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/orders", h.ordersByDateRange)
	e.GET("/reports/revenue", h.dailyRevenue)
}

const dateLayout = "2006-01-02"

func (h *ReportHandler) ordersByDateRange(c echo.Context) error {
	start, err := time.Parse(dateLayout, c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start date"})
	}
	end, err := time.Parse(dateLayout, c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end date"})
	}

	out, err := h.uc.ListOrdersByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) dailyRevenue(c echo.Context) error {
	date, err := time.Parse(dateLayout, c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	out, err := h.uc.DailyRevenue(c.Request().Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
