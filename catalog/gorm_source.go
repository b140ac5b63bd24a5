package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GormSource reads the products table through GORM.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}
