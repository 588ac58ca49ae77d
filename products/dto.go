package products

// ProductRequest is the body of POST /api/product and PUT /api/product/{id}.
type ProductRequest struct {
	Name string `json:"name" example:"Changelog CLI"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Data *Product `json:"data"`
}

// ProductListResponse wraps the caller's products.
type ProductListResponse struct {
	Data []Product `json:"data"`
}
