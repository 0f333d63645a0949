package domain

import "time"

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartItem is one cart line. Title, Image and the price fields are
// denormalized from the catalog on read so the client can render totals
// without a second round trip.
type CartItem struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	Title          string `json:"title,omitempty"`
	Image          string `json:"image,omitempty"`
	PriceCents     int64  `json:"priceCents,omitempty"`
	SalePriceCents int64  `json:"salePriceCents,omitempty"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Line returns the item for productID, or nil when the cart has no such line.
func (c Cart) Line(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
