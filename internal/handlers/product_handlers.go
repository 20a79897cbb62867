package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/models"
	"github.com/soocci/soocci-backend/internal/repository"
	"github.com/soocci/soocci-backend/internal/storage"
)

// ProductInput is the multipart form for create and update.
// ExistingImages is a JSON array of URLs the operator kept in the gallery;
// newly attached "images" files are uploaded and appended after them, so the
// form's visual order is the stored order and the first URL stays primary.
type ProductInput struct {
	Title          string `form:"title" binding:"required"`
	Slug           string `form:"slug"`
	CategoryID     int64  `form:"category_id" binding:"required"`
	SKU            string `form:"sku" binding:"required"`
	Material       string `form:"material"`
	Description    string `form:"description" binding:"required"`
	TechnicalSpecs string `form:"technical_specs"`
	IsPublished    *bool  `form:"is_published"`
	ExistingImages string `form:"existing_images"`
}

func (in *ProductInput) imageURLs() []string {
	urls := []string{}
	if in.ExistingImages != "" {
		_ = json.Unmarshal([]byte(in.ExistingImages), &urls)
	}
	return urls
}

// GetAdminProducts handles GET /admin/products (drafts included).
func (h *Handlers) GetAdminProducts(c *gin.Context) {
	products, err := h.Products.ListAll()
	if err != nil {
		log.WithError(err).Error("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct handles POST /admin/products (multipart).
//
// Validation rejects the submit before anything touches storage or the
// database. New image files upload sequentially first; if one fails the
// submit aborts with the raw storage error and earlier uploads are not
// rolled back.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Slug == "" {
		input.Slug = slug.Make(input.Title)
	}
	if input.Material == "" {
		input.Material = models.DefaultMaterial
	}

	images := input.imageURLs()
	if form, err := c.MultipartForm(); err == nil && form != nil {
		uploaded, err := h.uploadImages(c.Request.Context(), storage.ProductPrefix, form.File["images"])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		images = append(images, uploaded...)
	}

	product := &models.Product{
		CategoryID:     input.CategoryID,
		Title:          input.Title,
		Slug:           input.Slug,
		SKU:            input.SKU,
		Material:       input.Material,
		Description:    input.Description,
		TechnicalSpecs: input.TechnicalSpecs,
		Images:         images,
		IsPublished:    input.IsPublished == nil || *input.IsPublished,
	}

	if err := h.Products.Insert(product); err != nil {
		log.WithError(err).Error("Product insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct handles PUT /admin/products/:id (multipart).
// Kept existing URLs merge with new uploads; the record is replaced by id
// with no version check.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Products.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.WithError(err).Error("Product lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	images := input.imageURLs()
	if form, err := c.MultipartForm(); err == nil && form != nil {
		uploaded, err := h.uploadImages(c.Request.Context(), storage.ProductPrefix, form.File["images"])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		images = append(images, uploaded...)
	}

	product := &models.Product{
		ID:             id,
		CategoryID:     input.CategoryID,
		Title:          input.Title,
		Slug:           input.Slug,
		SKU:            input.SKU,
		Material:       input.Material,
		Description:    input.Description,
		TechnicalSpecs: input.TechnicalSpecs,
		Images:         images,
		IsPublished:    input.IsPublished == nil || *input.IsPublished,
		CreatedAt:      existing.CreatedAt,
	}
	if product.Slug == "" {
		product.Slug = existing.Slug
	}
	if product.Material == "" {
		product.Material = existing.Material
	}

	if err := h.Products.Update(product); err != nil {
		log.WithError(err).Error("Product update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct handles DELETE /admin/products/:id.
//
// Same two-phase sequence as categories: re-fetch by id for the current
// image list, batch-remove the object-store URLs (external image URLs are
// skipped, storage failure is logged but never blocks), then delete the row.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.WithError(err).Error("Product lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	h.removeStoredImages(c.Request.Context(), product.Images)

	if err := h.Products.Delete(id); err != nil {
		log.WithError(err).Error("Product delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
