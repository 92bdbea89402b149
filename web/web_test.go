package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/spendwise/ledger"
)

func amt(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testServer(t *testing.T) *Server {
	t.Helper()

	l := ledger.New()
	ctx := context.Background()

	l.AddIncome(ctx, ledger.MakeDate(2024, time.March, 1), amt("2000.00"), "salary")
	l.AddExpense(ctx, ledger.MakeDate(2024, time.March, 5), ledger.Food, amt("45.50"), "lunch")
	l.AddExpense(ctx, ledger.MakeDate(2024, time.March, 12), ledger.Transport, amt("9.75"), "bus")
	l.AddExpense(ctx, ledger.MakeDate(2024, time.April, 2), ledger.Food, amt("12.00"), "other month")
	l.SetMonthlyBudget(ctx, ledger.Food, amt("50"))

	return &Server{ledger: l}
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestGetTransactions(t *testing.T) {
	s := testServer(t)

	t.Run("All", func(t *testing.T) {
		rec := get(t, s, "/api/transactions")
		assert.Equal(t, rec.Code, http.StatusOK)

		var response []TransactionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, len(response), 4)
		assert.Equal(t, response[0].Date, "2024-03-01")
		assert.Equal(t, response[0].Type, "INCOME")
	})

	t.Run("ByMonth", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?month=2024-03")
		assert.Equal(t, rec.Code, http.StatusOK)

		var response []TransactionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, len(response), 3)
	})

	t.Run("ByRange", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?from=2024-03-05&to=2024-03-12")
		assert.Equal(t, rec.Code, http.StatusOK)

		var response []TransactionResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, len(response), 2)
		assert.Equal(t, response[0].Category, "FOOD")
		assert.Equal(t, response[1].Category, "TRANSPORT")
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?month=march")
		assert.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("InvertedRange", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?from=2024-03-12&to=2024-03-05")
		assert.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("LonelyFrom", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?from=2024-03-05")
		assert.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("MonthCombinedWithRange", func(t *testing.T) {
		rec := get(t, s, "/api/transactions?month=2024-03&from=2024-03-01&to=2024-03-31")
		assert.Equal(t, rec.Code, http.StatusBadRequest)
	})
}

func TestGetSummary(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/summary?month=2024-03")
	assert.Equal(t, rec.Code, http.StatusOK)

	var response SummaryResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.Equal(t, response.Month, "2024-03")
	assert.True(t, response.Income.Equal(amt("2000.00")))
	assert.True(t, response.Expense.Equal(amt("55.25")))
	assert.True(t, response.Net.Equal(amt("1944.75")))
	assert.Equal(t, len(response.ByCategory), 2)
	assert.True(t, response.ByCategory["FOOD"].Equal(amt("45.50")))
}

func TestGetAlerts(t *testing.T) {
	s := testServer(t)

	t.Run("NoAlerts", func(t *testing.T) {
		rec := get(t, s, "/api/alerts?month=2024-04")
		assert.Equal(t, rec.Code, http.StatusOK)

		var response []AlertResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, len(response), 0)
	})

	t.Run("Warning", func(t *testing.T) {
		l := ledger.New()
		ctx := context.Background()
		l.SetMonthlyBudget(ctx, ledger.Food, amt("50"))
		l.AddExpense(ctx, ledger.MakeDate(2024, time.March, 5), ledger.Food, amt("45.50"), "")

		s := &Server{ledger: l}

		rec := get(t, s, "/api/alerts?month=2024-03")
		assert.Equal(t, rec.Code, http.StatusOK)

		var response []AlertResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, len(response), 1)
		assert.Equal(t, response[0].Category, "FOOD")
		assert.False(t, response[0].Over)
		assert.True(t, response[0].Remaining.Equal(amt("4.50")))
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		rec := get(t, s, "/api/alerts?month=2024-3")
		assert.Equal(t, rec.Code, http.StatusBadRequest)
	})
}
