package backoffice

import (
	"context"
	"fmt"
	"net/url"
)

// SalesService calls the point-of-sale endpoints.
type SalesService struct {
	api *Client
}

func NewSalesService(api *Client) *SalesService {
	return &SalesService{api: api}
}

// SaleFilter narrows the sale listing to a date range. Dates are ISO formatted
// (YYYY-MM-DDTHH:MM:SS) as the backend expects.
type SaleFilter struct {
	StartDate string
	EndDate   string
}

func (f SaleFilter) values() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	return q
}

// List returns sale records matching the filter.
func (s *SalesService) List(ctx context.Context, filter SaleFilter) ([]Sale, error) {
	var sales []Sale
	if err := s.api.Get(ctx, "/api/sales", filter.values(), &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// Get returns a single sale by id.
func (s *SalesService) Get(ctx context.Context, id int) (*Sale, error) {
	var sale Sale
	if err := s.api.Get(ctx, fmt.Sprintf("/api/sales/%d", id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// SaleResult reports the records a sale produced. Multi-item sales return
// SaleIDs; the single-item form returns ID.
type SaleResult struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
	SaleIDs []int  `json:"sale_ids,omitempty"`
}

// Create records a sale of one or more titles, decrementing stock and writing
// the income to the ledger.
func (s *SalesService) Create(ctx context.Context, input SaleInput) (*SaleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result SaleResult
	if err := s.api.Post(ctx, "/api/sales", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOne records a sale of a single title. The backend distinguishes this
// short form from Create by the absence of an items array and answers with a
// single record id.
func (s *SalesService) CreateOne(ctx context.Context, item SaleItem) (*SaleResult, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	var result SaleResult
	if err := s.api.Post(ctx, "/api/sales", item, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
