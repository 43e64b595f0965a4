package catalog

// Product is the catalog record. Price is a display string (NUMERIC-style,
// "₹2,499") to avoid rounding errors; orders snapshot Name/Price at
// add-to-cart time, so later edits here never touch existing orders.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string `json:"name"        example:"Classic Wooden Frame"`
	Description string `json:"description" example:"A timeless frame to complement any photo."`
	Price       string `json:"price"       example:"₹1,299"`
	Image       string `json:"image"`
	Category    string `json:"category"    example:"Frames"`
	Subcategory string `json:"subcategory" example:"Wooden"`
}

// UpdateProductRequest payload of partial update.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Subcategory ids are unique only within their parent category.
type Subcategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}
