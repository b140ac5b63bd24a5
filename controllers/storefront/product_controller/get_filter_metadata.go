package product_controller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/config"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetFilterMetadata godoc
// @Summary Get product filter metadata
// @Description Category, tag and price-range facets for the product grid. Served from SQL when the database is up, computed from the in-memory catalog otherwise.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Router /store/products/filters [get]
func GetFilterMetadata(c *gin.Context) {
	if config.StoreDB != nil {
		if meta, err := filterMetadataFromSQL(c); err == nil {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
			return
		}
		// SQL failure falls through to the in-memory path.
	}

	meta := filterMetadataFromCatalog(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}

func filterMetadataFromSQL(c *gin.Context) (models.FilterMetadata, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var meta models.FilterMetadata

	rows, err := config.StoreDB.Query(ctx,
		`SELECT category, COUNT(*) FROM products GROUP BY category ORDER BY category`)
	if err != nil {
		return meta, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return meta, err
		}
		meta.Categories = append(meta.Categories, models.FilterOption{
			Label: name, Value: strings.ToLower(name), Count: count,
		})
	}
	if err := rows.Err(); err != nil {
		return meta, err
	}

	tagRows, err := config.StoreDB.Query(ctx,
		`SELECT t.tag, COUNT(*) AS n
		 FROM products p, jsonb_array_elements_text(p.tags) AS t(tag)
		 GROUP BY t.tag ORDER BY n DESC, t.tag`)
	if err != nil {
		return meta, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tag string
		var count int
		if err := tagRows.Scan(&tag, &count); err != nil {
			return meta, err
		}
		meta.Tags = append(meta.Tags, models.FilterOption{
			Label: tag, Value: strings.ToLower(tag), Count: count,
		})
	}
	if err := tagRows.Err(); err != nil {
		return meta, err
	}

	if err := config.StoreDB.QueryRow(ctx,
		`SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0) FROM products`).
		Scan(&meta.PriceRange.Min, &meta.PriceRange.Max); err != nil {
		return meta, err
	}

	return meta, nil
}

func filterMetadataFromCatalog(c *gin.Context) models.FilterMetadata {
	products := catalogStore.All(c.Request.Context())

	categories := map[string]int{}
	tags := map[string]int{}
	var meta models.FilterMetadata
	for i, p := range products {
		categories[p.Category]++
		for _, t := range p.Tags {
			tags[t]++
		}
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}

	for name, count := range categories {
		meta.Categories = append(meta.Categories, models.FilterOption{
			Label: name, Value: strings.ToLower(name), Count: count,
		})
	}
	sort.Slice(meta.Categories, func(i, j int) bool {
		return meta.Categories[i].Label < meta.Categories[j].Label
	})

	for name, count := range tags {
		meta.Tags = append(meta.Tags, models.FilterOption{
			Label: name, Value: strings.ToLower(name), Count: count,
		})
	}
	sort.Slice(meta.Tags, func(i, j int) bool {
		if meta.Tags[i].Count != meta.Tags[j].Count {
			return meta.Tags[i].Count > meta.Tags[j].Count
		}
		return meta.Tags[i].Label < meta.Tags[j].Label
	})

	return meta
}
