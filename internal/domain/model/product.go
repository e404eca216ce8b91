package model

import (
	"strconv"
	"strings"
)

// Product represents a product offered by exactly one business. Upstream
// documents sometimes carry the business reference by ID and sometimes by
// denormalized name, so both fields are kept.
type Product struct {
	ID           string   `json:"id" db:"id"`                       // unique product ID
	BusinessID   string   `json:"business_id" db:"business_id"`     // owning business ID
	BusinessName string   `json:"business_name" db:"business_name"` // denormalized owning business name
	Name         string   `json:"name" db:"name"`                   // product name
	Price        float64  `json:"price" db:"price"`                 // unit price
	InStock      bool     `json:"in_stock" db:"in_stock"`           // stock flag
	Tags         []string `json:"tags" db:"tags"`                   // free-text labels
	ImageURL     *string  `json:"image_url,omitempty" db:"image_url"`
}

// GetImageURL returns the image reference, or an empty string when unset.
func (p *Product) GetImageURL() string {
	if p.ImageURL != nil {
		return *p.ImageURL
	}
	return ""
}

// ParsePrice coerces a price value of unknown document type into a float.
// Upstream records store prices as numbers or as currency-formatted strings
// ("$12.50", "1,200"); anything unparseable falls back to 0.
func ParsePrice(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		cleaned := strings.TrimSpace(v)
		cleaned = strings.ReplaceAll(cleaned, "$", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		price, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return price
	default:
		return 0
	}
}
