package education

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("education not found")
	ErrNameRequired = errors.New("name is required")
)

type Repository interface {
	List() ([]Education, error)
	GetByID(id int) (Education, error)
	Create(e Education) (Education, error)
	Update(id int, e Education) (Education, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []Education
	nextID int
}

func NewInMemoryRepository(seed []Education) *InMemoryRepository {
	repo := &InMemoryRepository{
		items:  make([]Education, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, item := range seed {
		repo.items = append(repo.items, item)
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() ([]Education, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Education, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *InMemoryRepository) GetByID(id int) (Education, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}

	return Education{}, ErrNotFound
}

func (r *InMemoryRepository) Create(e Education) (Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == 0 {
		e.ID = r.nextID
		r.nextID++
	}

	r.items = append(r.items, e)
	return e, nil
}

func (r *InMemoryRepository) Update(id int, update Education) (Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			item.Name = update.Name
			r.items[i] = item
			return item, nil
		}
	}

	return Education{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
