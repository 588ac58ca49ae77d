package users

import "time"

// ProfileResponse is the signed-in user's public profile.
type ProfileResponse struct {
	ID           string    `json:"id" example:"0f8c3d9e-1b2a-4c5d-8e7f-112233445566"`
	Username     string    `json:"username" example:"rick"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int64     `json:"productCount" example:"3"`
}

// ProfileEnvelope wraps the profile returned by GET /api/me.
type ProfileEnvelope struct {
	Data *ProfileResponse `json:"data"`
}
