package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product Categories
type ProductCategory string

const (
	ProductCategoryVehicle        ProductCategory = "vehicle"
	ProductCategoryMotorcycle     ProductCategory = "motorcycle"
	ProductCategoryEquipment      ProductCategory = "equipment"
	ProductCategorySparePartsNew  ProductCategory = "spare_parts_new"
	ProductCategorySparePartsUsed ProductCategory = "spare_parts_used"
)

func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case ProductCategoryVehicle, ProductCategoryMotorcycle, ProductCategoryEquipment,
		ProductCategorySparePartsNew, ProductCategorySparePartsUsed:
		return true
	}
	return false
}

// Product Status
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusSold     ProductStatus = "sold"
	ProductStatusReserved ProductStatus = "reserved"
)

func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusActive, ProductStatusSold, ProductStatusReserved:
		return true
	}
	return false
}

// Currency Types
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func ValidCurrency(c Currency) bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

type Product struct {
	gorm.Model
	Category     ProductCategory `json:"category" gorm:"not null;index"`
	Title        string          `json:"title" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        float64         `json:"price" gorm:"not null"`
	Currency     Currency        `json:"currency" gorm:"default:'TRY'"`
	Status       ProductStatus   `json:"status" gorm:"default:'active';index"`
	ContactPhone string          `json:"contact_phone"`
	ContactEmail string          `json:"contact_email"`
	// Images sıralı URL listesi, Specs serbest anahtar→değer eşlemesi.
	Images datatypes.JSON    `json:"images" gorm:"type:jsonb"`
	Specs  datatypes.JSONMap `json:"specs" gorm:"type:jsonb"`
}
