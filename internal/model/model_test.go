package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAppointmentStatus(t *testing.T) {
	assert.True(t, ValidAppointmentStatus(AppointmentStatusPending))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusConfirmed))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusCancelled))
	assert.False(t, ValidAppointmentStatus("done"))
	assert.False(t, ValidAppointmentStatus(""))
}

func TestValidProductCategory(t *testing.T) {
	for _, c := range []ProductCategory{
		ProductCategoryVehicle,
		ProductCategoryMotorcycle,
		ProductCategoryEquipment,
		ProductCategorySparePartsNew,
		ProductCategorySparePartsUsed,
	} {
		assert.True(t, ValidProductCategory(c), string(c))
	}
	assert.False(t, ValidProductCategory("bicycle"))
}

func TestValidProductStatus(t *testing.T) {
	assert.True(t, ValidProductStatus(ProductStatusActive))
	assert.True(t, ValidProductStatus(ProductStatusSold))
	assert.True(t, ValidProductStatus(ProductStatusReserved))
	assert.False(t, ValidProductStatus("archived"))
}

func TestValidCurrency(t *testing.T) {
	assert.True(t, ValidCurrency(CurrencyTRY))
	assert.True(t, ValidCurrency(CurrencyUSD))
	assert.True(t, ValidCurrency(CurrencyEUR))
	assert.False(t, ValidCurrency("GBP"))
}

func TestValidCommentStatus(t *testing.T) {
	assert.True(t, ValidCommentStatus(CommentStatusPending))
	assert.True(t, ValidCommentStatus(CommentStatusApproved))
	assert.True(t, ValidCommentStatus(CommentStatusRejected))
	assert.False(t, ValidCommentStatus("hidden"))
}

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "motor-bakim-rehberi", SanitizeSlug("motor bakim rehberi"))
	assert.Equal(t, "kis-bakimi-2025", SanitizeSlug("Kis Bakimi 2025"))
	// Türkçe karakterler slug dışına düşer
	assert.Equal(t, "yazlk-lastik", SanitizeSlug("Yazlık Lastik"))
}
