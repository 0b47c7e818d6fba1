package postgres

import (
	"context"
	"errors"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO categories (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		category.Name, category.Description)

	if err := row.Scan(&category.ID, &category.CreatedAt); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id int64) (*domain.Category, error) {
	category := &domain.Category{}
	row := r.pool.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM categories WHERE id = $1`, id)

	err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAll retrieves all categories ordered by name
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, description, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update updates an existing category
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		category.ID, category.Name, category.Description)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// HasExpenses reports whether any expense references the category
func (r *CategoryRepository) HasExpenses(id int64) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM expenses WHERE category_id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Count returns the number of categories
func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	row := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories`)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
