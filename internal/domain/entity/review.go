package entity

// Review holds a 1..5 rating; the range is enforced at validation time,
// not by the schema.
type Review struct {
	ID        int64  `json:"review_id"`
	ProductID int64  `json:"product_id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}
