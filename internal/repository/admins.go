package repository

import (
	"database/sql"
	"errors"

	"github.com/soocci/soocci-backend/internal/models"
)

// AdminRepository is the data access contract for the 'admins' table.
type AdminRepository interface {
	GetByEmail(email string) (*models.Admin, error)
	GetByID(id int64) (*models.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository returns a MySQL-backed AdminRepository.
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) get(query string, arg interface{}) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(query, arg).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	return r.get("SELECT id, email, password_hash, created_at FROM admins WHERE email = ?", email)
}

func (r *adminRepository) GetByID(id int64) (*models.Admin, error) {
	return r.get("SELECT id, email, password_hash, created_at FROM admins WHERE id = ?", id)
}
