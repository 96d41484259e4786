package handlers

import (
	"net/http"

	"github.com/prakharmi/finance-assistant/internal/dto"
	"github.com/prakharmi/finance-assistant/internal/errors"
	"github.com/prakharmi/finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles aggregation-related HTTP requests
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns income, expense and net savings totals
// @Summary Financial summary
// @Description Compute total income, total expense and net savings over an optional date window
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param dateRange query string false "Lower date bound" Enums(all, week, month, 3months)
// @Success 200 {object} dto.SummaryResponse "Summary totals"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	totals, err := h.analyticsService.Summary(userID, c.QueryParam("dateRange"))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(totals))
}

// GetExpensesByCategory returns expense totals grouped by category
// @Summary Expenses by category
// @Description Compute expense totals per category over an optional date window, sorted descending
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param dateRange query string false "Lower date bound" Enums(all, week, month, 3months)
// @Success 200 {array} dto.CategoryExpenseResponse "Category expense totals"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/expenses-by-category [get]
func (h *AnalyticsHandler) GetExpensesByCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, err := h.analyticsService.ExpensesByCategory(userID, c.QueryParam("dateRange"))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryExpenseResponses(expenses))
}

// GetMonthlySummary returns all-time totals grouped by month and type
// @Summary Monthly summary
// @Description Compute all-time amount totals grouped by calendar year, month and type
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MonthlySummaryEntry "Monthly totals, ascending by year and month"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/monthly-summary [get]
func (h *AnalyticsHandler) GetMonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	totals, err := h.analyticsService.MonthlySummary(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlySummaryEntries(totals))
}

// GetCategoryTrend returns monthly expense totals for one category
// @Summary Category trend
// @Description Compute monthly expense totals for a single category across full history
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param categoryName query string true "Category name"
// @Success 200 {array} dto.TrendEntry "Monthly totals, ascending by year and month"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Missing category name"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/category-trend [get]
func (h *AnalyticsHandler) GetCategoryTrend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryName := c.QueryParam("categoryName")
	if categoryName == "" {
		return SendError(c, errors.CategoryMissingName)
	}

	points, err := h.analyticsService.CategoryTrend(userID, categoryName)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTrendEntries(points))
}
