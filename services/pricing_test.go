package services_test

import (
	"testing"

	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/stretchr/testify/assert"
)

func TestComputeLineTotal(t *testing.T) {
	total, err := services.ComputeLineTotal(10.0, 3)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, total)
}

func TestComputeLineTotalRejectsZeroQuantity(t *testing.T) {
	_, err := services.ComputeLineTotal(10.0, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestComputeCartSubtotal(t *testing.T) {
	items := []services.LineItem{
		{Price: 10.0, Quantity: 3},
		{Price: 2.5, Quantity: 2},
	}
	assert.Equal(t, 35.0, services.ComputeCartSubtotal(items))
}

func TestComputeCartSubtotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, services.ComputeCartSubtotal(nil))
}

func TestComputeOrderTotal(t *testing.T) {
	assert.Equal(t, 110.0, services.ComputeOrderTotal(100.0, 5.0, 10.0, 5.0))
}

// A coupon larger than everything else drives the total negative; the value
// is passed through untouched.
func TestComputeOrderTotalNegative(t *testing.T) {
	assert.Equal(t, -85.0, services.ComputeOrderTotal(100.0, 5.0, 10.0, 200.0))
}
