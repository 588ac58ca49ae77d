package updates

// CreateUpdateRequest is the body of POST /api/update.
type CreateUpdateRequest struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	ProductID string  `json:"productId"`
	Version   *string `json:"version,omitempty"`
	Asset     *string `json:"asset,omitempty"`
}

// EditUpdateRequest is the body of PUT /api/update/{id}. Absent fields keep
// their stored value.
type EditUpdateRequest struct {
	Title   *string `json:"title,omitempty"`
	Body    *string `json:"body,omitempty"`
	Status  *Status `json:"status,omitempty"`
	Version *string `json:"version,omitempty"`
	Asset   *string `json:"asset,omitempty"`
}

// CreatePointRequest is the body of POST /api/updatepoint.
type CreatePointRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UpdateID    string `json:"updateId"`
}

// EditPointRequest is the body of PUT /api/updatepoint/{id}.
type EditPointRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateResponse wraps a single update.
type UpdateResponse struct {
	Data *Update `json:"data"`
}

// UpdateListResponse wraps a list of updates.
type UpdateListResponse struct {
	Data []Update `json:"data"`
}

// PointResponse wraps a single update point.
type PointResponse struct {
	Data *UpdatePoint `json:"data"`
}

// PointListResponse wraps a list of update points.
type PointListResponse struct {
	Data []UpdatePoint `json:"data"`
}
