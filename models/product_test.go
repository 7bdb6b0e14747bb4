package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fernandodev-git/bakery-api/models"
)

func TestInvoiceDescription(t *testing.T) {
	cake := models.Product{Type: models.ProductTypeCake, Title: "Red Velvet", Weight: 1.5}
	assert.Equal(t, "Cake: Red Velvet (1.50kg)", cake.InvoiceDescription())

	weightless := models.Product{Type: models.ProductTypeCake, Title: "Mini Brownie"}
	assert.Equal(t, "Cake: Mini Brownie", weightless.InvoiceDescription())

	unknown := models.Product{Type: "voucher", Title: "Gift Card"}
	assert.Equal(t, "Gift Card", unknown.InvoiceDescription())
}
