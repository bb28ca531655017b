package backoffice

// UserRole is the backend's role string
type UserRole = string

const (
	// RoleAdmin is an ordinary administrator
	RoleAdmin UserRole = "admin"
	// RoleSuperAdmin additionally unlocks user administration
	RoleSuperAdmin UserRole = "super_admin"
)

// Principal is the authenticated user's profile as returned by the login and
// /api/auth/me endpoints. Held in memory only, cleared with the credential.
type Principal struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	RealName     string   `json:"real_name"`
	EmployeeID   string   `json:"employee_id"`
	Gender       string   `json:"gender"`
	Age          int      `json:"age"`
	Role         UserRole `json:"role"`
	IsSuperAdmin bool     `json:"is_super_admin"`
}

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// Book is one inventory record.
type Book struct {
	ID            int     `json:"id"`
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Publisher     string  `json:"publisher"`
	RetailPrice   float64 `json:"retail_price"`
	StockQuantity int     `json:"stock_quantity"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// BookInput carries the writable fields of a book.
type BookInput struct {
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Publisher     string  `json:"publisher"`
	RetailPrice   float64 `json:"retail_price"`
	StockQuantity int     `json:"stock_quantity,omitempty"`
}

// Purchase statuses mirror the procurement lifecycle: a pending order is paid
// or cancelled, and a paid order's stock is then added to inventory.
const (
	PurchaseStatusPending          = "pending"
	PurchaseStatusPaid             = "paid"
	PurchaseStatusCancelled        = "cancelled"
	PurchaseStatusAddedToInventory = "added_to_inventory"
)

// Purchase is one procurement record.
type Purchase struct {
	ID            int     `json:"id"`
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Publisher     string  `json:"publisher"`
	PurchasePrice float64 `json:"purchase_price"`
	Quantity      int     `json:"quantity"`
	Status        string  `json:"status"`
	UserID        int     `json:"user_id,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// PurchaseLine is one ordered title in a new purchase order. Either BookID
// references an existing book, or the bibliographic fields describe a new one.
type PurchaseLine struct {
	BookID        int     `json:"book_id,omitempty"`
	ISBN          string  `json:"isbn,omitempty"`
	Title         string  `json:"title,omitempty"`
	Author        string  `json:"author,omitempty"`
	Publisher     string  `json:"publisher,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	Quantity      int     `json:"quantity"`
}

// PurchaseOrder is the create-purchase payload.
type PurchaseOrder struct {
	Books []PurchaseLine `json:"books"`
}

// SaleRef and UserRef are the nested summaries some list endpoints embed.
type SaleRef struct {
	ID    int    `json:"id"`
	ISBN  string `json:"isbn,omitempty"`
	Title string `json:"title"`
}

type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	RealName string `json:"real_name"`
}

// Sale is one point-of-sale record.
type Sale struct {
	ID         int      `json:"id"`
	BookID     int      `json:"book_id"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price"`
	UserID     int      `json:"user_id,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
	Book       *SaleRef `json:"book,omitempty"`
	User       *UserRef `json:"user,omitempty"`
}

// SaleItem is one line of a multi-item sale.
type SaleItem struct {
	BookID    int      `json:"book_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// SaleInput is the create-sale payload.
type SaleInput struct {
	Items []SaleItem `json:"items"`
}

// Transaction types in the ledger.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one ledger entry.
type Transaction struct {
	ID              int      `json:"id"`
	TransactionType string   `json:"transaction_type"`
	Description     string   `json:"description"`
	Amount          float64  `json:"amount"`
	UserID          int      `json:"user_id"`
	CreatedAt       string   `json:"created_at"`
	User            *UserRef `json:"user,omitempty"`
}

// FinanceSummary aggregates the ledger over an optional date range.
type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
}

// User is an administered account. Same shape as Principal; kept separate so
// administration payloads can evolve without touching the session.
type User struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	RealName     string   `json:"real_name"`
	EmployeeID   string   `json:"employee_id"`
	Gender       string   `json:"gender"`
	Age          int      `json:"age"`
	Role         UserRole `json:"role"`
	IsSuperAdmin bool     `json:"is_super_admin"`
}

// CreateUserRequest carries the fields required to provision an account. The
// backend always creates ordinary administrators.
type CreateUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RealName   string `json:"real_name"`
	EmployeeID string `json:"employee_id"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
}

// UpdateUserRequest carries a partial account update. Username and EmployeeID
// are only honored for super administrators.
type UpdateUserRequest struct {
	Username   string `json:"username,omitempty"`
	RealName   string `json:"real_name,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Age        int    `json:"age,omitempty"`
}

// UpdateProfileRequest is the self-service profile update.
type UpdateProfileRequest struct {
	RealName string `json:"real_name,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Age      int    `json:"age,omitempty"`
}

// ChangePasswordRequest is the self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
