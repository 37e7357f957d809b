package models

import "github.com/shopspring/decimal"

// Category groups products on the menu.
type Category struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Product is a menu item. Price is the current menu price; orders capture
// their own unit price at creation so this can change freely.
type Product struct {
	ID              int64           `json:"id,omitempty"`
	CategoryID      int64           `json:"category_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	IsVegan         bool            `json:"is_vegan"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	PreparationTime int             `json:"preparation_time,omitempty"`
	Calories        int             `json:"calories,omitempty"`
	Allergens       []string        `json:"allergens,omitempty"`
}
