package models

import "fmt"

// ProductTypeCake is the only product variant the shop currently sells.
// The type field is kept as a discriminator so the JSON files stay
// forward-compatible with future variants.
const ProductTypeCake = "cake"

type Product struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"category_id"`
	BranchID    int     `json:"branch_id"`
	ImageURL    string  `json:"image_url"`
	Weight      float64 `json:"weight"`
}

// InvoiceDescription renders the line-item label used on invoices.
func (p Product) InvoiceDescription() string {
	switch p.Type {
	case ProductTypeCake:
		if p.Weight > 0 {
			return fmt.Sprintf("Cake: %s (%.2fkg)", p.Title, p.Weight)
		}
		return "Cake: " + p.Title
	default:
		return p.Title
	}
}
