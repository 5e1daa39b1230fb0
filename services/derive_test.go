package services_test

import (
	"testing"

	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "stainless-steel-cookware", services.Slugify("Stainless Steel Cookware"))
	assert.Equal(t, "cookware", services.Slugify("Cookware"))
	assert.Equal(t, "already-slugged", services.Slugify("already-slugged"))
}

func TestGenerateSKURange(t *testing.T) {
	for i := 0; i < 200; i++ {
		sku := services.GenerateSKU()
		assert.GreaterOrEqual(t, sku, 100000)
		assert.LessOrEqual(t, sku, 999999)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+15551234567", services.FormatPhone("+1 (555) 123-4567"))
	assert.Equal(t, "08012345678", services.FormatPhone("0801 234 5678"))
	assert.Equal(t, "", services.FormatPhone(""))
}
