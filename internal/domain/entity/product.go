// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product is a menu entry as served by the backend. The cart never mutates it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // Unit price, never negative.
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
}

// Category groups products on the menu.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ActiveProducts keeps only the products flagged active, preserving order.
func ActiveProducts(products []*Product) []*Product {
	active := make([]*Product, 0, len(products))
	for _, p := range products {
		if p != nil && p.IsActive {
			active = append(active, p)
		}
	}

	return active
}

// ActiveCategories keeps only the categories flagged active, preserving order.
func ActiveCategories(categories []*Category) []*Category {
	active := make([]*Category, 0, len(categories))
	for _, c := range categories {
		if c != nil && c.IsActive {
			active = append(active, c)
		}
	}

	return active
}
