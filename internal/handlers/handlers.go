package handlers

import (
	"github.com/soocci/soocci-backend/internal/mail"
	"github.com/soocci/soocci-backend/internal/repository"
	"github.com/soocci/soocci-backend/internal/storage"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Admins     repository.AdminRepository
	Store      storage.Store
	Mailer     mail.Mailer
}
