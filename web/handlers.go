package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/spendwise/ledger"
)

func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// TransactionResponse is the JSON shape of one transaction.
type TransactionResponse struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// SummaryResponse is the JSON response for the summary endpoint.
type SummaryResponse struct {
	Month      string                     `json:"month"`
	Income     decimal.Decimal            `json:"income"`
	Expense    decimal.Decimal            `json:"expense"`
	Net        decimal.Decimal            `json:"net"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
}

// AlertResponse is the JSON shape of one budget alert.
type AlertResponse struct {
	Category  string          `json:"category"`
	Spent     decimal.Decimal `json:"spent"`
	Limit     decimal.Decimal `json:"limit"`
	Remaining decimal.Decimal `json:"remaining"`
	Over      bool            `json:"over"`
	Message   string          `json:"message"`
}

// handleGetTransactions handles GET requests to /api/transactions.
//
// Query parameters:
//   - month: Restrict to a month (YYYY-MM).
//   - from, to: Inclusive date range (YYYY-MM-DD), both required together.
//
// Without parameters all transactions are returned, sorted
// chronologically.
func (s *Server) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	monthParam := r.URL.Query().Get("month")
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")

	if monthParam != "" && (fromParam != "" || toParam != "") {
		http.Error(w, "month cannot be combined with from/to", http.StatusBadRequest)
		return
	}
	if (fromParam == "") != (toParam == "") {
		http.Error(w, "from and to must be provided together", http.StatusBadRequest)
		return
	}

	var transactions []ledger.Transaction
	switch {
	case monthParam != "":
		ym, err := ledger.NewYearMonth(monthParam)
		if err != nil {
			http.Error(w, "invalid month format (expected YYYY-MM): "+monthParam, http.StatusBadRequest)
			return
		}
		transactions = s.ledger.ListByMonth(ym)

	case fromParam != "":
		start, err := ledger.NewDate(fromParam)
		if err != nil {
			http.Error(w, "invalid from date format (expected YYYY-MM-DD): "+fromParam, http.StatusBadRequest)
			return
		}
		end, err := ledger.NewDate(toParam)
		if err != nil {
			http.Error(w, "invalid to date format (expected YYYY-MM-DD): "+toParam, http.StatusBadRequest)
			return
		}
		if start.Compare(end) > 0 {
			http.Error(w, "from must not be after to", http.StatusBadRequest)
			return
		}
		transactions = s.ledger.ListByDateRange(start, end)

	default:
		transactions = s.ledger.ListAll()
	}

	response := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		response[i] = TransactionResponse{
			ID:       txn.ID,
			Date:     txn.Date.String(),
			Type:     txn.Kind.String(),
			Category: txn.Category.String(),
			Amount:   txn.Amount,
			Note:     txn.Note,
		}
	}

	writeJSONResponse(w, response)
}

// handleGetSummary handles GET requests to /api/summary.
//
// Query parameters:
//   - month: Month to summarize (YYYY-MM). Defaults to the current month.
func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ym, ok := monthFromRequest(w, r)
	if !ok {
		return
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, category := range ledger.ExpenseCategories() {
		total := s.ledger.TotalExpenseByCategory(ym, category)
		if total.IsZero() {
			continue
		}
		byCategory[category.String()] = total
	}

	writeJSONResponse(w, &SummaryResponse{
		Month:      ym.String(),
		Income:     s.ledger.TotalIncome(ym),
		Expense:    s.ledger.TotalExpense(ym),
		Net:        s.ledger.Net(ym),
		ByCategory: byCategory,
	})
}

// handleGetAlerts handles GET requests to /api/alerts.
//
// Query parameters:
//   - month: Month to check (YYYY-MM). Defaults to the current month.
func (s *Server) handleGetAlerts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ym, ok := monthFromRequest(w, r)
	if !ok {
		return
	}

	alerts := s.ledger.BudgetAlerts(ym)

	response := make([]AlertResponse, len(alerts))
	for i, alert := range alerts {
		response[i] = AlertResponse{
			Category:  alert.Category.String(),
			Spent:     alert.Spent,
			Limit:     alert.Limit,
			Remaining: alert.Remaining,
			Over:      alert.Over,
			Message:   alert.Message(),
		}
	}

	writeJSONResponse(w, response)
}

// monthFromRequest parses the month query parameter, defaulting to the
// current month. A false return means the response is already written.
func monthFromRequest(w http.ResponseWriter, r *http.Request) (ledger.YearMonth, bool) {
	monthParam := r.URL.Query().Get("month")
	if monthParam == "" {
		now := time.Now()
		return ledger.YearMonth{Year: now.Year(), Month: now.Month()}, true
	}

	ym, err := ledger.NewYearMonth(monthParam)
	if err != nil {
		http.Error(w, "invalid month format (expected YYYY-MM): "+monthParam, http.StatusBadRequest)
		return ledger.YearMonth{}, false
	}
	return ym, true
}
