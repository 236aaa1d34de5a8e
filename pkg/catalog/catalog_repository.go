package catalog

import (
	"context"
	"errors"
	"strings"

	"cookops-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetSuppliers(ctx context.Context) ([]*entities.Supplier, error)
		GetSupplierByID(ctx context.Context, id string) (*entities.Supplier, error)
		FindSupplierByName(ctx context.Context, name string) (*entities.Supplier, error)
		CreateSupplier(ctx context.Context, supplier *entities.Supplier) error
		GetProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entities.SupplierProduct, error)
		FindProduct(ctx context.Context, supplierID uuid.UUID, name string) (*entities.SupplierProduct, error)
		CreateProduct(ctx context.Context, product *entities.SupplierProduct) error
		UpdateProduct(ctx context.Context, product *entities.SupplierProduct) error
		ActiveProductsBySupplierNames(ctx context.Context, names []string) ([]*entities.SupplierProduct, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetSuppliers(ctx context.Context) ([]*entities.Supplier, error) {
	var suppliers []*entities.Supplier
	if err := r.db.WithContext(ctx).Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *catalogRepository) GetSupplierByID(ctx context.Context, id string) (*entities.Supplier, error) {
	var supplier entities.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *catalogRepository) FindSupplierByName(ctx context.Context, name string) (*entities.Supplier, error) {
	var supplier entities.Supplier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *catalogRepository) CreateSupplier(ctx context.Context, supplier *entities.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *catalogRepository) GetProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entities.SupplierProduct, error) {
	var products []*entities.SupplierProduct
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) FindProduct(ctx context.Context, supplierID uuid.UUID, name string) (*entities.SupplierProduct, error) {
	var product entities.SupplierProduct
	err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND name = ?", supplierID, name).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *entities.SupplierProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entities.SupplierProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// ActiveProductsBySupplierNames loads the active catalog slice for the
// suppliers referenced by the current line set, so the matcher never indexes
// the whole catalog. Matching on supplier name is case-insensitive.
func (r *catalogRepository) ActiveProductsBySupplierNames(ctx context.Context, names []string) ([]*entities.SupplierProduct, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(name)))
	}

	var products []*entities.SupplierProduct
	if err := r.db.WithContext(ctx).
		Joins("JOIN suppliers ON suppliers.id = supplier_products.supplier_id").
		Where("supplier_products.active = ? AND LOWER(suppliers.name) IN ?", true, lowered).
		Preload("Supplier").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
