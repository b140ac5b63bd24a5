package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve the product list, optionally narrowed to a category or a tag (both case-insensitive). Paginated when page/limit are supplied.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category label"
// @Param tag query string false "Tag label"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	category := c.Query("category")
	tag := c.Query("tag")

	var products []models.Product
	switch {
	case category != "":
		products = catalogStore.ByCategory(c.Request.Context(), category)
	case tag != "":
		products = catalogStore.ByTag(c.Request.Context(), tag)
	default:
		products = catalogStore.All(c.Request.Context())
	}

	if c.Query("page") != "" || c.Query("limit") != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 12
		}

		total := len(products)
		totalPages := (total + limit - 1) / limit
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", gin.H{
			"products": products[start:end],
			"count":    end - start,
		}, &models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": products,
		"count":    len(products),
	}))
}
