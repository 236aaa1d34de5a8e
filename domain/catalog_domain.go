package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetSuppliers  = "success get suppliers"
	MessageSuccessGetProducts   = "success get supplier products"
	MessageSuccessCatalogImport = "supplier catalog imported successfully"

	MessageFailedGetSuppliers  = "failed to get suppliers"
	MessageFailedGetProducts   = "failed to get supplier products"
	MessageFailedCatalogImport = "failed to import supplier catalog"

	ErrSupplierNotFound = errors.New("supplier not found")
)

type (
	CatalogImportProduct struct {
		Supplier string           `json:"supplier" validate:"required"`
		Name     string           `json:"name" validate:"required"`
		Code     *string          `json:"code,omitempty"`
		Ean      *string          `json:"ean,omitempty"`
		Uom      string           `json:"uom"`
		PackQty  *decimal.Decimal `json:"pack_qty,omitempty"`
	}

	CatalogImportRequest struct {
		Products []CatalogImportProduct `json:"products" validate:"required,dive"`
	}

	CatalogImportResult struct {
		SuppliersCreated int `json:"suppliers_created"`
		ProductsCreated  int `json:"products_created"`
		ProductsUpdated  int `json:"products_updated"`
		Skipped          int `json:"skipped"`
	}
)
