package updates

import "time"

// Status is the lifecycle state of an update.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusLive       Status = "LIVE"
	StatusDeprecated Status = "DEPRECATED"
	StatusArchived   Status = "ARCHIVED"
)

// Statuses lists every accepted status, in declaration order.
var Statuses = []string{
	string(StatusInProgress),
	string(StatusLive),
	string(StatusDeprecated),
	string(StatusArchived),
}

// Update is one changelog entry filed under a product.
type Update struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title" example:"Dark mode"`
	Body      string    `json:"body" example:"Adds a dark theme to every screen."`
	Status    Status    `json:"status" example:"IN_PROGRESS"`
	Version   *string   `json:"version,omitempty" example:"1.4.0"`
	Asset     *string   `json:"asset,omitempty"`
	ProductID string    `json:"productId"`
}

// UpdatePoint is a single bullet of an update.
type UpdatePoint struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name" example:"Settings toggle"`
	Description string    `json:"description" example:"Theme can be switched from settings."`
	UpdateID    string    `json:"updateId"`
}
