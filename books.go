package backoffice

import (
	"context"
	"fmt"
	"net/url"
)

// BooksService calls the inventory endpoints.
type BooksService struct {
	api *Client
}

func NewBooksService(api *Client) *BooksService {
	return &BooksService{api: api}
}

// BookFilter narrows the inventory listing. Zero-value fields are omitted.
type BookFilter struct {
	ISBN      string
	Title     string
	Author    string
	Publisher string
}

func (f BookFilter) values() url.Values {
	q := url.Values{}
	if f.ISBN != "" {
		q.Set("isbn", f.ISBN)
	}
	if f.Title != "" {
		q.Set("title", f.Title)
	}
	if f.Author != "" {
		q.Set("author", f.Author)
	}
	if f.Publisher != "" {
		q.Set("publisher", f.Publisher)
	}
	return q
}

// List returns inventory records matching the filter.
func (s *BooksService) List(ctx context.Context, filter BookFilter) ([]Book, error) {
	var books []Book
	if err := s.api.Get(ctx, "/api/books", filter.values(), &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Search matches a single term against ISBN, title, author, and publisher.
func (s *BooksService) Search(ctx context.Context, term string) ([]Book, error) {
	q := url.Values{}
	q.Set("q", term)

	var books []Book
	if err := s.api.Get(ctx, "/api/books/search", q, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Get returns a single book by id.
func (s *BooksService) Get(ctx context.Context, id int) (*Book, error) {
	var book Book
	if err := s.api.Get(ctx, fmt.Sprintf("/api/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Create adds a new book to the inventory.
func (s *BooksService) Create(ctx context.Context, input BookInput) (*Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var book Book
	if err := s.api.Post(ctx, "/api/books", input, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Update modifies an existing book.
func (s *BooksService) Update(ctx context.Context, id int, input BookInput) (*Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var book Book
	if err := s.api.Put(ctx, fmt.Sprintf("/api/books/%d", id), input, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a book. The backend restricts this to super administrators.
func (s *BooksService) Delete(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/api/books/%d", id), nil)
}
