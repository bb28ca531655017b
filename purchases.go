package backoffice

import (
	"context"
	"fmt"
)

// PurchasesService drives the procurement lifecycle: order, pay or cancel,
// then move paid stock into inventory.
type PurchasesService struct {
	api *Client
}

func NewPurchasesService(api *Client) *PurchasesService {
	return &PurchasesService{api: api}
}

// List returns all purchase orders.
func (s *PurchasesService) List(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase
	if err := s.api.Get(ctx, "/api/purchases", nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// Get returns a single purchase order by id.
func (s *PurchasesService) Get(ctx context.Context, id int) (*Purchase, error) {
	var purchase Purchase
	if err := s.api.Get(ctx, fmt.Sprintf("/api/purchases/%d", id), nil, &purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// CreateResult reports the ids of the orders a create call produced, one per line.
type CreateResult struct {
	Message     string `json:"message"`
	PurchaseIDs []int  `json:"purchase_ids"`
}

// Create places a purchase order. Each line either references an existing book
// or introduces a new title.
func (s *PurchasesService) Create(ctx context.Context, order PurchaseOrder) (*CreateResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	var result CreateResult
	if err := s.api.Post(ctx, "/api/purchases", order, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Pay marks a pending order as paid, recording the expense in the ledger.
func (s *PurchasesService) Pay(ctx context.Context, id int) error {
	return s.api.Post(ctx, fmt.Sprintf("/api/purchases/%d/pay", id), nil, nil)
}

// Cancel returns a pending order to the supplier.
func (s *PurchasesService) Cancel(ctx context.Context, id int) error {
	return s.api.Post(ctx, fmt.Sprintf("/api/purchases/%d/cancel", id), nil, nil)
}

// AddToInventory moves a paid order's stock into inventory. retailPrice is
// required when the order introduced a book not yet in the catalog.
func (s *PurchasesService) AddToInventory(ctx context.Context, id int, retailPrice float64) error {
	body := map[string]any{}
	if retailPrice > 0 {
		body["retail_price"] = retailPrice
	}
	return s.api.Post(ctx, fmt.Sprintf("/api/purchases/%d/add-to-inventory", id), body, nil)
}
