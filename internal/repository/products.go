package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/soocci/soocci-backend/internal/models"
)

// ProductRepository is the data access contract for the 'products' table.
type ProductRepository interface {
	ListAll() ([]models.Product, error)
	ListPublishedByCategory(categoryID int64) ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Insert(p *models.Product) error
	Update(p *models.Product) error
	Delete(id int64) error
	Count() (int, error)
	CountCreatedSince(since time.Time) (int, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository returns a MySQL-backed ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `p.id, p.category_id, p.title, p.slug, p.sku, p.material,
	p.description, p.technical_specs, p.images, p.is_published, p.created_at`

func scanProduct(row interface{ Scan(...interface{}) error }, withCategory bool) (*models.Product, error) {
	var p models.Product
	var dbImages []byte

	dest := []interface{}{
		&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.SKU, &p.Material,
		&p.Description, &p.TechnicalSpecs, &dbImages, &p.IsPublished, &p.CreatedAt,
	}
	if withCategory {
		dest = append(dest, &p.CategoryName, &p.CategorySlug)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	// Images column is a JSON array string; always hand back a real slice
	p.Images = []string{}
	if len(dbImages) > 0 {
		_ = json.Unmarshal(dbImages, &p.Images)
	}
	return &p, nil
}

// ListAll returns every product, drafts included, newest first, each joined
// with its parent category name for the admin table.
func (r *productRepository) ListAll() ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `, c.name, c.slug
		FROM products p
		JOIN categories c ON p.category_id = c.id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows, true)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) ListPublishedByCategory(categoryID int64) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.category_id = ? AND p.is_published = TRUE
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows, false)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(id int64) (*models.Product, error) {
	query := "SELECT " + productColumns + " FROM products p WHERE p.id = ?"
	p, err := scanProduct(r.db.QueryRow(query, id), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetBySlug resolves a product with its parent category name and slug joined
// in for breadcrumb display. Slug uniqueness is assumed, not enforced.
func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `, c.name, c.slug
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.slug = ?`

	p, err := scanProduct(r.db.QueryRow(query, slug), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *productRepository) Insert(p *models.Product) error {
	imagesJSON, _ := json.Marshal(p.Images)

	query := `
		INSERT INTO products
		(category_id, title, slug, sku, material, description, technical_specs, images, is_published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	p.CreatedAt = time.Now()
	res, err := r.db.Exec(query,
		p.CategoryID, p.Title, p.Slug, p.SKU, p.Material,
		p.Description, p.TechnicalSpecs, string(imagesJSON), p.IsPublished, p.CreatedAt,
	)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Update replaces the editable fields by id. Last write wins.
func (r *productRepository) Update(p *models.Product) error {
	imagesJSON, _ := json.Marshal(p.Images)

	query := `
		UPDATE products
		SET category_id = ?, title = ?, slug = ?, sku = ?, material = ?,
			description = ?, technical_specs = ?, images = ?, is_published = ?
		WHERE id = ?`

	_, err := r.db.Exec(query,
		p.CategoryID, p.Title, p.Slug, p.SKU, p.Material,
		p.Description, p.TechnicalSpecs, string(imagesJSON), p.IsPublished, p.ID,
	)
	return err
}

func (r *productRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}

func (r *productRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *productRepository) CountCreatedSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM products WHERE created_at >= ?", since).Scan(&count)
	return count, err
}
