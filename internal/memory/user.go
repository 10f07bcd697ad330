package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dukerupert/orderflow/internal/domain"
)

// UserRepository is an in-memory user store keyed by lowercased email.
type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
	now    func() time.Time
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		users:  make(map[string]domain.User),
		now:    time.Now,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email.String())
	if _, exists := r.users[key]; exists {
		return nil, domain.Conflict("user.create", "email is already registered")
	}

	user.ID = r.nextID
	user.CreatedAt = r.now().UTC()
	r.users[key] = user
	r.nextID++
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.NotFound("user.find", "user", email)
	}
	return &u, nil
}
