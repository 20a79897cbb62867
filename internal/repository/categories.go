package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/soocci/soocci-backend/internal/models"
)

// CategoryRepository is the data access contract for the 'categories' table.
type CategoryRepository interface {
	ListAll() ([]models.Category, error)
	ListPublished() ([]models.Category, error)
	GetByID(id int64) (*models.Category, error)
	GetPublishedBySlug(slug string) (*models.Category, error)
	Insert(cat *models.Category) error
	Update(cat *models.Category) error
	Delete(id int64) error
	Count() (int, error)
	CountCreatedSince(since time.Time) (int, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository returns a MySQL-backed CategoryRepository.
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryColumns = "id, name, slug, description, main_image, sort_order, is_published, created_at"

func scanCategory(row interface{ Scan(...interface{}) error }) (*models.Category, error) {
	var cat models.Category
	err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.Description,
		&cat.MainImage,
		&cat.SortOrder,
		&cat.IsPublished,
		&cat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepository) list(query string, args ...interface{}) ([]models.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *cat)
	}
	return cats, rows.Err()
}

// ListAll returns every category, drafts included, for the admin console.
func (r *categoryRepository) ListAll() ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories ORDER BY sort_order ASC, created_at DESC"
	return r.list(query)
}

// ListPublished returns the public catalog ordering: explicit sort keys
// first, newest first among ties.
func (r *categoryRepository) ListPublished() ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE is_published = TRUE ORDER BY sort_order ASC, created_at DESC"
	return r.list(query)
}

func (r *categoryRepository) GetByID(id int64) (*models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE id = ?"
	cat, err := scanCategory(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return cat, err
}

func (r *categoryRepository) GetPublishedBySlug(slug string) (*models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE slug = ? AND is_published = TRUE"
	cat, err := scanCategory(r.db.QueryRow(query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return cat, err
}

func (r *categoryRepository) Insert(cat *models.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, main_image, sort_order, is_published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	cat.CreatedAt = time.Now()
	res, err := r.db.Exec(query,
		cat.Name, cat.Slug, cat.Description, cat.MainImage, cat.SortOrder, cat.IsPublished, cat.CreatedAt,
	)
	if err != nil {
		return err
	}
	cat.ID, err = res.LastInsertId()
	return err
}

// Update replaces the editable fields by id. Last write wins; there is no
// version column.
func (r *categoryRepository) Update(cat *models.Category) error {
	query := `
		UPDATE categories
		SET name = ?, slug = ?, description = ?, main_image = ?, sort_order = ?, is_published = ?
		WHERE id = ?`

	_, err := r.db.Exec(query,
		cat.Name, cat.Slug, cat.Description, cat.MainImage, cat.SortOrder, cat.IsPublished, cat.ID,
	)
	return err
}

func (r *categoryRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = ?", id)
	return err
}

func (r *categoryRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}

func (r *categoryRepository) CountCreatedSince(since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM categories WHERE created_at >= ?", since).Scan(&count)
	return count, err
}
