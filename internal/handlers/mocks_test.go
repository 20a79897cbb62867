package handlers

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soocci/soocci-backend/internal/mail"
	"github.com/soocci/soocci-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock Category Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	ByID       map[int64]*models.Category
	BySlug     map[string]*models.Category

	ListErr   error
	GetErr    error
	InsertErr error
	UpdateErr error
	DeleteErr error
	CountErr  error

	LastSaved   *models.Category
	DeletedIDs  []int64
	CountVal    int
	NewCountVal int
}

func (m *MockCategoryRepo) ListAll() ([]models.Category, error) {
	return m.Categories, m.ListErr
}

func (m *MockCategoryRepo) ListPublished() ([]models.Category, error) {
	return m.Categories, m.ListErr
}

func (m *MockCategoryRepo) GetByID(id int64) (*models.Category, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if cat, ok := m.ByID[id]; ok {
		return cat, nil
	}
	return nil, errNotFound()
}

func (m *MockCategoryRepo) GetPublishedBySlug(slug string) (*models.Category, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if cat, ok := m.BySlug[slug]; ok {
		return cat, nil
	}
	return nil, errNotFound()
}

func (m *MockCategoryRepo) Insert(cat *models.Category) error {
	m.LastSaved = cat
	if m.InsertErr != nil {
		return m.InsertErr
	}
	cat.ID = 1
	return nil
}

func (m *MockCategoryRepo) Update(cat *models.Category) error {
	m.LastSaved = cat
	return m.UpdateErr
}

func (m *MockCategoryRepo) Delete(id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

func (m *MockCategoryRepo) Count() (int, error) {
	return m.CountVal, m.CountErr
}

func (m *MockCategoryRepo) CountCreatedSince(since time.Time) (int, error) {
	return m.NewCountVal, m.CountErr
}

// --- Mock Product Repository ---

type MockProductRepo struct {
	Products []models.Product
	ByID     map[int64]*models.Product
	BySlug   map[string]*models.Product

	ListErr   error
	GetErr    error
	InsertErr error
	UpdateErr error
	DeleteErr error
	CountErr  error

	LastSaved   *models.Product
	DeletedIDs  []int64
	CountVal    int
	NewCountVal int
}

func (m *MockProductRepo) ListAll() ([]models.Product, error) {
	return m.Products, m.ListErr
}

func (m *MockProductRepo) ListPublishedByCategory(categoryID int64) ([]models.Product, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Product
	for _, p := range m.Products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProductRepo) GetByID(id int64) (*models.Product, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if p, ok := m.ByID[id]; ok {
		return p, nil
	}
	return nil, errNotFound()
}

func (m *MockProductRepo) GetBySlug(slug string) (*models.Product, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if p, ok := m.BySlug[slug]; ok {
		return p, nil
	}
	return nil, errNotFound()
}

func (m *MockProductRepo) Insert(p *models.Product) error {
	m.LastSaved = p
	if m.InsertErr != nil {
		return m.InsertErr
	}
	p.ID = 1
	return nil
}

func (m *MockProductRepo) Update(p *models.Product) error {
	m.LastSaved = p
	return m.UpdateErr
}

func (m *MockProductRepo) Delete(id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

func (m *MockProductRepo) Count() (int, error) {
	return m.CountVal, m.CountErr
}

func (m *MockProductRepo) CountCreatedSince(since time.Time) (int, error) {
	return m.NewCountVal, m.CountErr
}

// --- Mock Admin Repository ---

type MockAdminRepo struct {
	Admins map[string]*models.Admin // keyed by email
	GetErr error
}

func (m *MockAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if a, ok := m.Admins[email]; ok {
		return a, nil
	}
	return nil, errNotFound()
}

func (m *MockAdminRepo) GetByID(id int64) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, a := range m.Admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errNotFound()
}

// --- Mock Object Store ---

const mockStoreBase = "https://abc.supabase.co/storage/v1/object/public/images/"

type MockStore struct {
	UploadErr     error
	RemoveErr     error
	FailUploadAt  int // 1-based index of the upload that fails; 0 = never
	UploadedPaths []string
	RemovedPaths  [][]string
}

func (m *MockStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	if m.UploadErr != nil {
		return m.UploadErr
	}
	if m.FailUploadAt > 0 && len(m.UploadedPaths)+1 == m.FailUploadAt {
		return errUploadFailed()
	}
	m.UploadedPaths = append(m.UploadedPaths, path)
	return nil
}

func (m *MockStore) PublicURL(path string) string {
	return mockStoreBase + path
}

func (m *MockStore) Remove(ctx context.Context, paths []string) error {
	m.RemovedPaths = append(m.RemovedPaths, paths)
	return m.RemoveErr
}

func (m *MockStore) ObjectPath(url string) (string, bool) {
	if !strings.Contains(url, "supabase.co") {
		return "", false
	}
	_, after, found := strings.Cut(url, "/images/")
	if !found || after == "" {
		return "", false
	}
	return after, true
}

// --- Mock Mailer ---

type MockMailer struct {
	SendErr       error
	Inquiries     []mail.ContactInquiry
	Subscriptions []string
}

func (m *MockMailer) SendContactInquiry(ctx context.Context, inq mail.ContactInquiry) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Inquiries = append(m.Inquiries, inq)
	return nil
}

func (m *MockMailer) SendNewsletterSignup(ctx context.Context, email string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Subscriptions = append(m.Subscriptions, email)
	return nil
}
