package contacts

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for contact submission storage
type Repository interface {
	Create(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error)
	ListAll(ctx context.Context) ([]*ContactSubmission, error)
}

// InMemoryRepository stores submissions in a process-local map. Used in
// development and in environments without a database.
type InMemoryRepository struct {
	mu       sync.RWMutex
	byID     map[string]*ContactSubmission
	inserted []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID: make(map[string]*ContactSubmission),
	}
}

// Create assigns a fresh UUID and timestamp and stores the submission.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := newSubmission(req)

	r.mu.Lock()
	r.byID[sub.ID] = sub
	r.inserted = append(r.inserted, sub.ID)
	r.mu.Unlock()

	return sub, nil
}

// ListAll returns every stored submission in insertion order.
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ContactSubmission, 0, len(r.inserted))
	for _, id := range r.inserted {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// newSubmission builds the stored record from a validated request. IDs are
// random UUIDs so concurrent creates never collide.
func newSubmission(req *CreateContactRequest) *ContactSubmission {
	return &ContactSubmission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}
}
