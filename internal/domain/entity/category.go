package entity

import "time"

// Category optionally nests under a parent category.
type Category struct {
	ID          int64     `json:"category_id"`
	Name        string    `json:"category_name"`
	Description string    `json:"description,omitempty"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
