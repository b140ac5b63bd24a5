package models

// FilterMetadata lists the facets the product grid can filter on.
type FilterMetadata struct {
	Categories []FilterOption `json:"categories"`
	Tags       []FilterOption `json:"tags"`
	PriceRange PriceRange     `json:"price_range"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
