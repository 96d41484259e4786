package services

import (
	"errors"
	"testing"
	"time"

	"github.com/prakharmi/finance-assistant/internal/models"
	"github.com/prakharmi/finance-assistant/internal/repositories"
	"github.com/prakharmi/finance-assistant/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	service         *analyticsService
	testUserID      uuid.UUID
	testNow         time.Time
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceSuite))
}

func (s *AnalyticsServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)

	s.testUserID = uuid.New()
	s.testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	service := NewAnalyticsService(s.transactionRepo, s.categoryRepo, NewNoopMetricsRecorder())
	s.service = service.(*analyticsService)
	s.service.now = func() time.Time { return s.testNow }
}

func (s *AnalyticsServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsServiceSuite) amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (s *AnalyticsServiceSuite) TestSummary_BothTypes() {
	s.transactionRepo.EXPECT().
		SumByType(s.testUserID, nil).
		Return([]models.TypeTotal{
			{Type: models.TransactionTypeIncome, Total: s.amount("500.00")},
			{Type: models.TransactionTypeExpense, Total: s.amount("150.00")},
		}, nil)

	totals, err := s.service.Summary(s.testUserID, "all")
	s.NoError(err)
	s.True(totals.TotalIncome.Equal(s.amount("500.00")))
	s.True(totals.TotalExpense.Equal(s.amount("150.00")))
	s.True(totals.NetSavings.Equal(s.amount("350.00")))
}

func (s *AnalyticsServiceSuite) TestSummary_NoTransactionsZeroTotals() {
	s.transactionRepo.EXPECT().
		SumByType(s.testUserID, nil).
		Return([]models.TypeTotal{}, nil)

	totals, err := s.service.Summary(s.testUserID, "")
	s.NoError(err)
	s.True(totals.TotalIncome.IsZero())
	s.True(totals.TotalExpense.IsZero())
	s.True(totals.NetSavings.IsZero())
}

func (s *AnalyticsServiceSuite) TestSummary_NegativeNetSavings() {
	s.transactionRepo.EXPECT().
		SumByType(s.testUserID, nil).
		Return([]models.TypeTotal{
			{Type: models.TransactionTypeExpense, Total: s.amount("200.00")},
		}, nil)

	totals, err := s.service.Summary(s.testUserID, "")
	s.NoError(err)
	s.True(totals.TotalIncome.IsZero())
	s.True(totals.NetSavings.Equal(s.amount("-200.00")))
}

func (s *AnalyticsServiceSuite) TestSummary_DateRangePassedThrough() {
	since := s.testNow.AddDate(0, -1, 0)
	s.transactionRepo.EXPECT().
		SumByType(s.testUserID, &since).
		Return([]models.TypeTotal{}, nil)

	_, err := s.service.Summary(s.testUserID, "month")
	s.NoError(err)
}

func (s *AnalyticsServiceSuite) TestSummary_StorageFailurePropagates() {
	s.transactionRepo.EXPECT().
		SumByType(s.testUserID, nil).
		Return(nil, errors.New("connection refused"))

	_, err := s.service.Summary(s.testUserID, "")
	s.Error(err)
}

func (s *AnalyticsServiceSuite) TestExpensesByCategory() {
	s.transactionRepo.EXPECT().
		SumExpensesByCategory(s.testUserID, nil).
		Return([]models.CategoryExpense{
			{Category: "Rent", TotalAmount: s.amount("900.00")},
			{Category: "Food", TotalAmount: s.amount("150.00")},
		}, nil)

	expenses, err := s.service.ExpensesByCategory(s.testUserID, "")
	s.NoError(err)
	s.Len(expenses, 2)
	s.Equal("Rent", expenses[0].Category)
	s.Equal("Food", expenses[1].Category)
}

func (s *AnalyticsServiceSuite) TestExpensesByCategory_NilBecomesEmptySlice() {
	s.transactionRepo.EXPECT().
		SumExpensesByCategory(s.testUserID, nil).
		Return(nil, nil)

	expenses, err := s.service.ExpensesByCategory(s.testUserID, "")
	s.NoError(err)
	s.NotNil(expenses)
	s.Empty(expenses)
}

func (s *AnalyticsServiceSuite) TestMonthlySummary_GroupsByYearMonthType() {
	food := uuid.New()
	salary := uuid.New()
	transactions := []models.Transaction{
		{
			CategoryID: food,
			Type:       models.TransactionTypeExpense,
			Amount:     s.amount("100.00"),
			Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID: salary,
			Type:       models.TransactionTypeIncome,
			Amount:     s.amount("500.00"),
			Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID: food,
			Type:       models.TransactionTypeExpense,
			Amount:     s.amount("50.00"),
			Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	s.transactionRepo.EXPECT().
		GetAllWithFilter(models.TransactionFilter{UserID: s.testUserID}).
		Return(transactions, nil)

	totals, err := s.service.MonthlySummary(s.testUserID)
	s.NoError(err)
	s.Len(totals, 3)

	s.Equal(models.MonthlyTotal{Year: 2024, Month: 1, Type: models.TransactionTypeExpense, TotalAmount: s.amount("100.00")}, totals[0])
	s.Equal(models.MonthlyTotal{Year: 2024, Month: 1, Type: models.TransactionTypeIncome, TotalAmount: s.amount("500.00")}, totals[1])
	s.Equal(models.MonthlyTotal{Year: 2024, Month: 2, Type: models.TransactionTypeExpense, TotalAmount: s.amount("50.00")}, totals[2])
}

func (s *AnalyticsServiceSuite) TestMonthlySummary_SumsWithinBucket() {
	transactions := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: s.amount("10.10"), Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: s.amount("20.20"), Date: time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)},
	}

	s.transactionRepo.EXPECT().
		GetAllWithFilter(models.TransactionFilter{UserID: s.testUserID}).
		Return(transactions, nil)

	totals, err := s.service.MonthlySummary(s.testUserID)
	s.NoError(err)
	s.Len(totals, 1)
	s.True(totals[0].TotalAmount.Equal(s.amount("30.30")))
}

func (s *AnalyticsServiceSuite) TestMonthlySummary_YearsSortedAcrossBoundary() {
	transactions := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: s.amount("10.00"), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: s.amount("20.00"), Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	s.transactionRepo.EXPECT().
		GetAllWithFilter(models.TransactionFilter{UserID: s.testUserID}).
		Return(transactions, nil)

	totals, err := s.service.MonthlySummary(s.testUserID)
	s.NoError(err)
	s.Len(totals, 2)
	s.Equal(2023, totals[0].Year)
	s.Equal(2024, totals[1].Year)
}

func (s *AnalyticsServiceSuite) TestMonthlySummary_Empty() {
	s.transactionRepo.EXPECT().
		GetAllWithFilter(models.TransactionFilter{UserID: s.testUserID}).
		Return([]models.Transaction{}, nil)

	totals, err := s.service.MonthlySummary(s.testUserID)
	s.NoError(err)
	s.NotNil(totals)
	s.Empty(totals)
}

func (s *AnalyticsServiceSuite) TestCategoryTrend() {
	category := &models.Category{ID: uuid.New(), UserID: s.testUserID, Name: "Food"}
	transactions := []models.Transaction{
		{CategoryID: category.ID, Type: models.TransactionTypeExpense, Amount: s.amount("100.00"), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{CategoryID: category.ID, Type: models.TransactionTypeExpense, Amount: s.amount("50.00"), Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{CategoryID: category.ID, Type: models.TransactionTypeExpense, Amount: s.amount("75.00"), Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}

	s.categoryRepo.EXPECT().
		GetByName(s.testUserID, "Food").
		Return(category, nil)
	s.transactionRepo.EXPECT().
		GetAllWithFilter(models.TransactionFilter{
			UserID:     s.testUserID,
			Type:       models.TransactionTypeExpense,
			CategoryID: &category.ID,
		}).
		Return(transactions, nil)

	points, err := s.service.CategoryTrend(s.testUserID, "Food")
	s.NoError(err)
	s.Len(points, 2)
	s.Equal(models.TrendPoint{Year: 2024, Month: 1, TotalAmount: s.amount("150.00")}, points[0])
	s.Equal(models.TrendPoint{Year: 2024, Month: 2, TotalAmount: s.amount("75.00")}, points[1])
}

func (s *AnalyticsServiceSuite) TestCategoryTrend_UnknownCategoryYieldsEmpty() {
	s.categoryRepo.EXPECT().
		GetByName(s.testUserID, "Ghost").
		Return(nil, repositories.ErrCategoryNotFound)

	points, err := s.service.CategoryTrend(s.testUserID, "Ghost")
	s.NoError(err)
	s.NotNil(points)
	s.Empty(points)
}

func (s *AnalyticsServiceSuite) TestCategoryTrend_LookupFailurePropagates() {
	s.categoryRepo.EXPECT().
		GetByName(s.testUserID, "Food").
		Return(nil, errors.New("connection refused"))

	_, err := s.service.CategoryTrend(s.testUserID, "Food")
	s.Error(err)
}
