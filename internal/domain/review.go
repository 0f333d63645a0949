package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"reviewMessage"`
	Rating    int       `json:"reviewValue"`
	CreatedAt time.Time `json:"createdAt"`
}
