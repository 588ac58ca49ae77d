package products

import "time"

// Product is a changelog subject owned by one user.
type Product struct {
	ID          string    `json:"id" example:"3f1d9a8e-0c4b-4f57-9a51-2b7c6d8e9f10"`
	CreatedAt   time.Time `json:"createdAt"`
	Name        string    `json:"name" example:"Changelog CLI"`
	BelongsToID string    `json:"belongsToId"`
}
