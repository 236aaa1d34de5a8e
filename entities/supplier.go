package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Supplier struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string            `gorm:"uniqueIndex" json:"name"`
	VatNumber *string           `json:"vat_number,omitempty"`
	Metadata  datatypes.JSONMap `json:"metadata"`

	Products []*SupplierProduct `gorm:"foreignKey:SupplierID" json:"-"`
	Timestamp
}

// SupplierProduct is one procurable article of a supplier's catalog.
// SupplierSku is the procurement code resolved for aggregated ingredient rows.
type SupplierProduct struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SupplierID  uuid.UUID           `gorm:"uniqueIndex:uq_supplier_product_supplier_name" json:"supplier_id"`
	Name        string              `gorm:"uniqueIndex:uq_supplier_product_supplier_name" json:"name"`
	SupplierSku *string             `json:"supplier_sku,omitempty"`
	Ean         *string             `json:"ean,omitempty"`
	Uom         string              `json:"uom"` // "kg", "g", "l", "ml", "cl", "pc"
	PackQty     decimal.NullDecimal `gorm:"type:numeric(12,3)" json:"pack_qty"`
	Active      bool                `gorm:"default:true" json:"active"`
	Allergens   datatypes.JSON      `json:"allergens"`
	Metadata    datatypes.JSONMap   `json:"metadata"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
