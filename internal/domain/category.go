package domain

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryRepository defines persistence operations for categories.
// Categories are shared reference data, not user-scoped.
type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id int64) (*Category, error)
	GetAll() ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id int64) error
	HasExpenses(id int64) (bool, error)
	Count() (int64, error)
}
