package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/models"
	"github.com/soocci/soocci-backend/internal/repository"
)

// The public catalog never surfaces backend errors to a visitor: fetch
// failures are logged and the page degrades to an empty or not-found state.

// GetCategories handles GET /v1/categories.
// Published records only, explicit sort order first, newest among ties.
func (h *Handlers) GetCategories(c *gin.Context) {
	cats, err := h.Categories.ListPublished()
	if err != nil {
		log.WithError(err).Error("Failed to fetch public categories")
		cats = nil
	}
	if cats == nil {
		cats = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// GetCategoryProducts handles GET /v1/categories/:slug/products.
// An unknown or unpublished slug is a not-found state, not an error.
func (h *Handlers) GetCategoryProducts(c *gin.Context) {
	cat, err := h.Categories.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if err != repository.ErrNotFound {
			log.WithError(err).Error("Failed to resolve category by slug")
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	products, err := h.Products.ListPublishedByCategory(cat.ID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch category products")
		products = nil
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"category": cat, "products": products})
}

// ProductDetailResponse carries the product plus its parsed spec rows and
// the parent category breadcrumb.
type ProductDetailResponse struct {
	models.Product
	Specs []models.SpecRow `json:"specs"`
}

// GetProductDetail handles GET /v1/products/:slug.
// Absence is a terminal not-found state; the technical_specs column is
// parsed leniently with the Material/SKU fallback.
func (h *Handlers) GetProductDetail(c *gin.Context) {
	product, err := h.Products.GetBySlug(c.Param("slug"))
	if err != nil {
		if err != repository.ErrNotFound {
			log.WithError(err).Error("Failed to fetch product detail")
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	resp := ProductDetailResponse{
		Product: *product,
		Specs:   models.ParseTechnicalSpecs(product.TechnicalSpecs, product.Material, product.SKU),
	}
	c.JSON(http.StatusOK, gin.H{"product": resp})
}
