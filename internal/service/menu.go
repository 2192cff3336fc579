package service

import (
	"fmt"
	"strings"

	"pos-register/internal/domain"
)

// MenuService manages categories and menu items. Deletion is always soft;
// deactivated items vanish from active listings but historical order lines
// keep their snapshots.
type MenuService struct {
	catalog CatalogRepository
}

func NewMenuService(catalog CatalogRepository) *MenuService {
	return &MenuService{catalog: catalog}
}

func (s *MenuService) ListCategories() ([]domain.Category, error) {
	return s.catalog.ListActiveCategories()
}

func (s *MenuService) CreateCategory(cat *domain.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.catalog.CreateCategory(cat)
}

func (s *MenuService) UpdateCategory(cat *domain.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	return s.catalog.UpdateCategory(cat)
}

func (s *MenuService) ListItems(categoryID int) ([]domain.MenuItem, error) {
	return s.catalog.ListActiveMenuItems(categoryID)
}

func (s *MenuService) GetItem(id int) (*domain.MenuItem, error) {
	return s.catalog.GetMenuItem(id)
}

func (s *MenuService) CreateItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: item price must not be negative", domain.ErrValidation)
	}
	return s.catalog.CreateMenuItem(item)
}

func (s *MenuService) UpdateItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: item price must not be negative", domain.ErrValidation)
	}
	return s.catalog.UpdateMenuItem(item)
}

func (s *MenuService) DeleteItem(id int) error {
	return s.catalog.DeactivateMenuItem(id)
}
