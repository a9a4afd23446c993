package store

import (
	"context"
	"strings"

	"github.com/servicehub/servicehub-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing defaults and sentinels.
const (
	DefaultPage  = 1
	DefaultLimit = 8

	// FeaturedLimit is the number of services returned by the featured listing.
	FeaturedLimit = 6

	// AllCategories disables the category filter when passed as the category.
	AllCategories = "All Categories"
)

// ServiceQuery filters and paginates the service listing.
type ServiceQuery struct {
	// Keyword is matched case-insensitively as a substring of title,
	// category, companyName or company.
	Keyword string
	// Category is an exact match unless empty or AllCategories.
	Category string
	Page     int
	Limit    int
}

// WithDefaults fills in the default page and limit for non-positive values.
func (q ServiceQuery) WithDefaults() ServiceQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Skip returns the number of documents preceding the requested page.
func (q ServiceQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// FiltersCategory reports whether the category filter applies.
func (q ServiceQuery) FiltersCategory() bool {
	return q.Category != "" && q.Category != AllCategories
}

// Matches reports whether s satisfies the keyword and category filters.
// Store implementations that cannot push the filter down use this directly.
func (q ServiceQuery) Matches(s domain.Service) bool {
	if q.FiltersCategory() && s.Category != q.Category {
		return false
	}
	if q.Keyword == "" {
		return true
	}

	keyword := strings.ToLower(q.Keyword)
	for _, field := range []string{s.Title, s.Category, s.CompanyName, s.Company} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// ServicePage is one page of a filtered service listing.
type ServicePage struct {
	Services   []domain.Service `json:"services"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// NewServicePage assembles a page, computing the total page count as
// ceil(total/limit).
func NewServicePage(services []domain.Service, total int64, q ServiceQuery) *ServicePage {
	if services == nil {
		services = []domain.Service{}
	}
	return &ServicePage{
		Services:   services,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
	}
}

// TotalPages returns ceil(total/limit), or 0 for a non-positive limit.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ServiceStore defines the interface for service listing persistence.
type ServiceStore interface {
	// List returns the page of services matching q together with the total
	// match count ignoring pagination.
	List(ctx context.Context, q ServiceQuery) (*ServicePage, error)

	// Featured returns up to limit services, newest first.
	Featured(ctx context.Context, limit int) ([]domain.Service, error)

	// GetByID retrieves a service by identifier.
	// Returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)

	// ListByOwner returns every service whose userEmail equals email.
	ListByOwner(ctx context.Context, email string) ([]domain.Service, error)

	// Create inserts the service. The identifier is generated by the store.
	Create(ctx context.Context, service *domain.Service) (*InsertResult, error)

	// Update sets only the fields present in patch.
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ServicePatch) (*UpdateResult, error)

	// Delete removes the service. Reviews referencing it are left in place.
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
