package catalog

import (
	"context"
	"errors"
	"strings"

	"cookops-backend/domain"
	"cookops-backend/entities"
	"cookops-backend/pkg/ingredients"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetSuppliers(ctx context.Context) ([]*entities.Supplier, error)
		GetSupplierProducts(ctx context.Context, supplierID string) ([]*entities.SupplierProduct, error)
		ImportCatalog(ctx context.Context, req domain.CatalogImportRequest) (domain.CatalogImportResult, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetSuppliers(ctx context.Context) ([]*entities.Supplier, error) {
	return s.catalogRepository.GetSuppliers(ctx)
}

func (s *catalogService) GetSupplierProducts(ctx context.Context, supplierID string) ([]*entities.SupplierProduct, error) {
	supplier, err := s.catalogRepository.GetSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return s.catalogRepository.GetProductsBySupplier(ctx, supplier.ID)
}

// ImportCatalog upserts an upstream catalog dump: suppliers are keyed by
// name, products by (supplier, name). Existing products get their code, uom
// and pack quantity refreshed and are re-activated.
func (s *catalogService) ImportCatalog(ctx context.Context, req domain.CatalogImportRequest) (domain.CatalogImportResult, error) {
	result := domain.CatalogImportResult{}
	suppliersByName := make(map[string]*entities.Supplier)

	for _, item := range req.Products {
		supplierName := strings.TrimSpace(item.Supplier)
		productName := strings.TrimSpace(item.Name)
		if supplierName == "" || productName == "" {
			result.Skipped++
			continue
		}

		supplier, cached := suppliersByName[supplierName]
		if !cached {
			found, err := s.catalogRepository.FindSupplierByName(ctx, supplierName)
			if err != nil {
				return result, err
			}
			if found == nil {
				found = &entities.Supplier{ID: uuid.New(), Name: supplierName}
				if err := s.catalogRepository.CreateSupplier(ctx, found); err != nil {
					return result, err
				}
				result.SuppliersCreated++
			}
			supplier = found
			suppliersByName[supplierName] = supplier
		}

		uom := ingredients.NormalizeUom(item.Uom)
		packQty := decimal.NullDecimal{}
		if item.PackQty != nil {
			packQty = decimal.NullDecimal{Decimal: *item.PackQty, Valid: true}
		}

		existing, err := s.catalogRepository.FindProduct(ctx, supplier.ID, productName)
		if err != nil {
			return result, err
		}
		if existing == nil {
			product := &entities.SupplierProduct{
				ID:          uuid.New(),
				SupplierID:  supplier.ID,
				Name:        productName,
				SupplierSku: trimmedOrNil(item.Code),
				Ean:         trimmedOrNil(item.Ean),
				Uom:         uom,
				PackQty:     packQty,
				Active:      true,
			}
			if err := s.catalogRepository.CreateProduct(ctx, product); err != nil {
				return result, err
			}
			result.ProductsCreated++
			continue
		}

		if code := trimmedOrNil(item.Code); code != nil {
			existing.SupplierSku = code
		}
		if ean := trimmedOrNil(item.Ean); ean != nil {
			existing.Ean = ean
		}
		existing.Uom = uom
		if packQty.Valid {
			existing.PackQty = packQty
		}
		existing.Active = true
		if err := s.catalogRepository.UpdateProduct(ctx, existing); err != nil {
			return result, err
		}
		result.ProductsUpdated++
	}
	return result, nil
}

func trimmedOrNil(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
