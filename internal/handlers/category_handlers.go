package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/models"
	"github.com/soocci/soocci-backend/internal/repository"
	"github.com/soocci/soocci-backend/internal/storage"
)

// CategoryInput is the multipart form for create and update. MainImage
// carries the already-stored URL when the operator keeps the current image;
// an attached "image" file replaces it.
type CategoryInput struct {
	Name        string `form:"name" binding:"required"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
	SortOrder   int    `form:"sort_order"`
	IsPublished *bool  `form:"is_published"`
	MainImage   string `form:"main_image"`
}

// GetAdminCategories handles GET /admin/categories.
// The console sees drafts too, so no publish filter here.
func (h *Handlers) GetAdminCategories(c *gin.Context) {
	cats, err := h.Categories.ListAll()
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// CreateCategory handles POST /admin/categories (multipart).
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Slug auto-derives from the name on create only; editing the name
	// later never touches an already-set slug.
	if input.Slug == "" {
		input.Slug = slug.Make(input.Name)
	}

	imageURL := input.MainImage
	if file, err := c.FormFile("image"); err == nil && file != nil {
		urls, err := h.uploadImages(c.Request.Context(), storage.CategoryPrefix, []*multipart.FileHeader{file})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		imageURL = urls[0]
	}

	cat := &models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		MainImage:   imageURL,
		SortOrder:   input.SortOrder,
		IsPublished: input.IsPublished == nil || *input.IsPublished,
	}

	if err := h.Categories.Insert(cat); err != nil {
		log.WithError(err).Error("Category insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": cat})
}

// UpdateCategory handles PUT /admin/categories/:id (multipart).
// Full replace by id; last write wins.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Categories.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		log.WithError(err).Error("Category lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	imageURL := input.MainImage
	if file, err := c.FormFile("image"); err == nil && file != nil {
		urls, err := h.uploadImages(c.Request.Context(), storage.CategoryPrefix, []*multipart.FileHeader{file})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		imageURL = urls[0]
	}

	cat := &models.Category{
		ID:          id,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		MainImage:   imageURL,
		SortOrder:   input.SortOrder,
		IsPublished: input.IsPublished == nil || *input.IsPublished,
		CreatedAt:   existing.CreatedAt,
	}
	if cat.Slug == "" {
		cat.Slug = existing.Slug
	}

	if err := h.Categories.Update(cat); err != nil {
		log.WithError(err).Error("Category update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": cat})
}

// DeleteCategory handles DELETE /admin/categories/:id.
//
// Two-phase, best-effort, NOT transactional: the record is re-fetched by id
// so the image URL is current, the stored image is removed first (failure
// logged, not fatal), then the row goes. A row-delete failure after a
// successful storage delete leaves the record with a broken image reference.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	cat, err := h.Categories.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		log.WithError(err).Error("Category lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	if cat.MainImage != "" {
		h.removeStoredImages(c.Request.Context(), []string{cat.MainImage})
	}

	if err := h.Categories.Delete(id); err != nil {
		log.WithError(err).Error("Category delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
