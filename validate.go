package backoffice

import (
	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// Validation runs client side, before any payload reaches the network layer.
// Failures here render inline next to the offending form field.

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Validate will validate the payload
func (r BookInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Publisher, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.RetailPrice, validation.Required, validation.Min(0.0)),
	)
}

// Validate will validate one order line. Lines without a BookID must carry the
// full bibliographic description of the new title.
func (l PurchaseLine) Validate() error {
	rules := []*validation.FieldRules{
		validation.Field(&l.PurchasePrice, validation.Required, validation.Min(0.0)),
		validation.Field(&l.Quantity, validation.Required, validation.Min(1)),
	}
	if l.BookID == 0 {
		rules = append(rules,
			validation.Field(&l.ISBN, validation.Required),
			validation.Field(&l.Title, validation.Required),
			validation.Field(&l.Author, validation.Required),
			validation.Field(&l.Publisher, validation.Required),
		)
	}
	return validation.ValidateStruct(&l, rules...)
}

// Validate will validate the payload
func (r PurchaseOrder) Validate() error {
	if len(r.Books) == 0 {
		return goerrors.New("no books provided in purchase order", goerrors.CategoryValidation)
	}
	for _, line := range r.Books {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate will validate one sale line
func (i SaleItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.BookID, validation.Required),
		validation.Field(&i.Quantity, validation.Required, validation.Min(1)),
	)
}

// Validate will validate the payload
func (r SaleInput) Validate() error {
	if len(r.Items) == 0 {
		return goerrors.New("no items provided in sale", goerrors.CategoryValidation)
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate will validate the payload
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 80)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&r.RealName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.EmployeeID, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Gender, validation.Required),
		validation.Field(&r.Age, validation.Required, validation.Min(1)),
	)
}

// Validate will validate the payload
func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 128)),
	)
}
