package backoffice

import (
	"context"
	"net/url"
)

// FinanceService reads the financial ledger.
type FinanceService struct {
	api *Client
}

func NewFinanceService(api *Client) *FinanceService {
	return &FinanceService{api: api}
}

// TransactionFilter narrows the ledger listing. Dates are ISO formatted
// (YYYY-MM-DDTHH:MM:SS) as the backend expects.
type TransactionFilter struct {
	Type      string
	StartDate string
	EndDate   string
}

func (f TransactionFilter) values() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

// Transactions returns ledger entries, newest first.
func (s *FinanceService) Transactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	var transactions []Transaction
	if err := s.api.Get(ctx, "/api/finance/transactions", filter.values(), &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Summary aggregates income, expense, and net profit over the date range.
func (s *FinanceService) Summary(ctx context.Context, filter TransactionFilter) (*FinanceSummary, error) {
	var summary FinanceSummary
	if err := s.api.Get(ctx, "/api/finance/summary", filter.values(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
