package leads

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage
type Repository interface {
	// Insert persists one lead document and returns its store-assigned id.
	// CreatedAt is set server-side at call time.
	Insert(ctx context.Context, category Category, lead *Lead) (string, error)

	// ExistsByEmail reports whether a lead with this email is already
	// captured in the category.
	ExistsByEmail(ctx context.Context, category Category, email string) (bool, error)
}

// MemoryRepository is an in-memory Repository used in tests and local runs
// without a document store.
type MemoryRepository struct {
	mu    sync.RWMutex
	leads map[Category][]*Lead
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		leads: make(map[Category][]*Lead),
	}
}

// Insert stores a copy of the lead. The roi_email uniqueness rule is enforced
// here too so handler behavior matches the mongo-backed repository.
func (r *MemoryRepository) Insert(ctx context.Context, category Category, lead *Lead) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category == CategoryROIEmail && r.containsEmail(category, lead.Email) {
		return "", ErrDuplicateEmail
	}

	stored := *lead
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	r.leads[category] = append(r.leads[category], &stored)

	lead.ID = stored.ID
	lead.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

// ExistsByEmail reports whether the category holds a lead with this email.
func (r *MemoryRepository) ExistsByEmail(ctx context.Context, category Category, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.containsEmail(category, email), nil
}

// Count returns the number of leads captured in the category.
func (r *MemoryRepository) Count(category Category) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads[category])
}

func (r *MemoryRepository) containsEmail(category Category, email string) bool {
	for _, l := range r.leads[category] {
		if strings.EqualFold(l.Email, email) {
			return true
		}
	}
	return false
}
