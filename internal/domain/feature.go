package domain

import "time"

// FeatureImage is an admin-managed storefront banner.
type FeatureImage struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
