package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range []string{"Appetizer", "Main Course", "Dessert", "Beverage"} {
		assert.True(t, IsValidCategory(category), category)
	}
	for _, category := range []string{"", "Starter", "main course", "All"} {
		assert.False(t, IsValidCategory(category), category)
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{"Pending", "Preparing", "Ready", "Delivered", "Cancelled"} {
		assert.True(t, IsValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "pending", "Done", "Order Pending"} {
		assert.False(t, IsValidOrderStatus(status), status)
	}
}
