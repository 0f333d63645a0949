package domain

import "time"

type Product struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Image          string    `json:"image,omitempty"`
	Category       string    `json:"category"`
	Brand          string    `json:"brand"`
	PriceCents     int64     `json:"priceCents"`
	SalePriceCents int64     `json:"salePriceCents"` // 0 means no discount
	TotalStock     int       `json:"totalStock"`
	AverageRating  float64   `json:"averageRating,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EffectiveUnitPriceCents is the price a buyer actually pays: the sale
// price when one is set, the list price otherwise.
func (p Product) EffectiveUnitPriceCents() int64 {
	if p.SalePriceCents > 0 {
		return p.SalePriceCents
	}
	return p.PriceCents
}
