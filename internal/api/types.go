package api

// Wire models for the inventory/POS backend. Field names follow the server's
// JSON contract; prices are whole currency units, stock quantities may be
// fractional.

type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type Product struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Price     int        `json:"price"`
	Materials []Material `json:"materials"`
}

type ProductCreate struct {
	Name      string     `json:"name"`
	Price     int        `json:"price"`
	Materials []Material `json:"materials"`
}

type StockItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	Quantity     float64 `json:"quantity"`
	UnitID       int     `json:"unit_id"`
	UnitName     string  `json:"unit_name,omitempty"`
}

type StockSet struct {
	Quantity float64 `json:"quantity"`
}

type Sale struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       int     `json:"price"`
	Quantity    float64 `json:"quantity"`
	Discount    int     `json:"discount"`
	Date        string  `json:"date"`
}

type SaleCreate struct {
	ProductID int     `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Discount  int     `json:"discount"`
}

type ExpenseType struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DefaultPrice int    `json:"default_price"`
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}

type ExpenseTypeCreate struct {
	Name         string `json:"name"`
	DefaultPrice int    `json:"default_price"`
	CategoryID   int    `json:"category_id"`
}

type ExpenseDocument struct {
	ID           int     `json:"id"`
	Date         string  `json:"date"`
	TotalAmount  float64 `json:"total_amount"`
	Comment      string  `json:"comment,omitempty"`
	SupplierName string  `json:"supplier_name,omitempty"`
	ItemsCount   int     `json:"items_count"`
}

type ExpenseDocumentItem struct {
	ExpenseTypeID int     `json:"expense_type_id"`
	Quantity      float64 `json:"quantity"`
	UnitID        int     `json:"unit_id"`
	PricePerUnit  float64 `json:"price_per_unit"`
}

type ExpenseDocumentCreate struct {
	Date       string                `json:"date,omitempty"`
	SupplierID int                   `json:"supplier_id"`
	Comment    string                `json:"comment,omitempty"`
	Items      []ExpenseDocumentItem `json:"items"`
}

type Supplier struct {
	ID            int    `json:"id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

type OrderItem struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Price       int     `json:"price"`
}

type Order struct {
	ID             int         `json:"id"`
	CreatedDate    string      `json:"created_date"`
	CompletionDate *string     `json:"completion_date"`
	Status         string      `json:"status"`
	AdditionalInfo *string     `json:"additional_info"`
	Items          []OrderItem `json:"items"`
}

type OrderItemCreate struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderCreate struct {
	Items          []OrderItemCreate `json:"items"`
	CompleteNow    bool              `json:"complete_now,omitempty"`
	CompletionDate string            `json:"completion_date,omitempty"`
	AdditionalInfo string            `json:"additional_info,omitempty"`
}

type WriteOff struct {
	ID       int     `json:"id"`
	ItemName string  `json:"item_name,omitempty"`
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
	Date     string  `json:"date"`
}

type WriteOffCreate struct {
	ItemName string  `json:"item_name"`
	ItemType string  `json:"item_type"` // "product" or "stock"
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
}

// Ingredient is a raw material the stock tracks (GET /stock/materials).
type Ingredient struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}
