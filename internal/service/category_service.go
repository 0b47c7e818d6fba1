package service

import (
	"strings"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetCategories returns all categories
func (s *CategoryService) GetCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategory returns a category by ID
func (s *CategoryService) GetCategory(id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidDescription
	}
	return s.categoryRepo.Create(&domain.Category{
		Name:        name,
		Description: description,
	})
}

// UpdateCategory renames an existing category
func (s *CategoryService) UpdateCategory(id int64, name, description string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidDescription
	}

	category.Name = name
	category.Description = description
	return s.categoryRepo.Update(category)
}

// DeleteCategory removes a category. Deletion is refused while expenses
// still reference it, since that would orphan their reporting data.
func (s *CategoryService) DeleteCategory(id int64) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	inUse, err := s.categoryRepo.HasExpenses(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}

	return s.categoryRepo.Delete(id)
}
