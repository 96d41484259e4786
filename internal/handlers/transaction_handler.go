package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/prakharmi/finance-assistant/internal/dto"
	"github.com/prakharmi/finance-assistant/internal/errors"
	"github.com/prakharmi/finance-assistant/internal/repositories"
	"github.com/prakharmi/finance-assistant/internal/services"
	"github.com/prakharmi/finance-assistant/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	queryService       services.TransactionQueryServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	queryService services.TransactionQueryServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		queryService:       queryService,
	}
}

// ListTransactions retrieves a paginated transaction page with filtering
// @Summary List transactions
// @Description Retrieve paginated transaction history filtered by type, category and date range
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by transaction type" Enums(all, income, expense)
// @Param category query string false "Filter by category name"
// @Param dateRange query string false "Lower date bound" Enums(all, week, month, 3months)
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Number of results per page" default(10)
// @Success 200 {object} dto.ListTransactionsResponse "Transaction page"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	params := services.ListParams{
		Type:      c.QueryParam("type"),
		Category:  c.QueryParam("category"),
		DateRange: c.QueryParam("dateRange"),
		Page:      getIntParam(c, "page", 0),
		Limit:     getIntParam(c, "limit", 0),
	}

	page, err := h.queryService.List(userID, params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions:      dto.NewTransactionResponses(page.Transactions),
		CurrentPage:       page.CurrentPage,
		TotalPages:        page.TotalPages,
		TotalTransactions: page.TotalCount,
	})
}

// CreateTransaction records a single transaction
// @Summary Record a transaction
// @Description Record a new income or expense transaction, creating its category on first use
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} dto.TransactionResponse "Recorded transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	input, err := recordInputFromRequest(req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.Record(userID, input)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// BulkImport records multiple transactions atomically
// @Summary Import transactions
// @Description Record a batch of transactions in a single all-or-nothing operation
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkImportRequest true "Transactions to import"
// @Success 201 {object} dto.BulkImportResponse "Import confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or TRANSACTION_005 - Empty batch"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/add-multiple [post]
func (h *TransactionHandler) BulkImport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.BulkImportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if len(req.Transactions) == 0 {
		return SendError(c, errors.TransactionEmptyBatch)
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	inputs := make([]services.RecordInput, 0, len(req.Transactions))
	for _, item := range req.Transactions {
		input, err := recordInputFromRequest(item)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		inputs = append(inputs, input)
	}

	imported, err := h.transactionService.RecordBatch(userID, inputs)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.BulkImportResponse{
		Message:  "Transactions imported successfully",
		Imported: len(imported),
	})
}

// DeleteTransaction removes a transaction owned by the authenticated user
// @Summary Delete a transaction
// @Description Delete a transaction by ID. Transactions owned by other users report not found
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.DeleteTransactionResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_004 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Message: "Transaction deleted successfully",
	})
}

// ListCategories returns the authenticated user's category names
// @Summary List categories
// @Description Retrieve the user's category names sorted alphabetically
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoriesResponse "Category names"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/categories [get]
func (h *TransactionHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	names, err := h.transactionService.CategoryNames(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: names})
}

// recordInputFromRequest converts a validated create request into a service input
func recordInputFromRequest(req dto.CreateTransactionRequest) (services.RecordInput, error) {
	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return services.RecordInput{}, err
	}

	return services.RecordInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

// sendValidationError converts validator errors into field-level details
func sendValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		fieldErrors := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fieldErrors[fieldError.Field()] = validationMessage(fieldError)
		}
		traceID := getTraceID(c)
		response := errors.NewValidationError(fieldErrors, traceID)
		return c.JSON(response.GetHTTPStatus(), response)
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "transaction_type":
		return "must be income or expense"
	case "positive_amount":
		return "must be greater than zero"
	case "transaction_date":
		return "must be a valid date (YYYY-MM-DD or RFC3339)"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
