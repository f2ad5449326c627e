package user

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Filter holds the optional field-match clauses of a list or export query.
// String fields match as substrings, numeric fields match exactly.
type Filter struct {
	Name        *string
	PhoneNumber *string
	Address     *string
	Age         *int
	EducationID *int
}

// Sort names the field to order by. A field outside the allowed set is
// ignored and the store order applies.
type Sort struct {
	By   string
	Desc bool
}

// ListQuery combines filter, sort and paging. Limit <= 0 disables paging
// and returns the full matching set.
type ListQuery struct {
	Filter Filter
	Sort   Sort
	Offset int
	Limit  int
}

type Repository interface {
	GetByID(id int) (User, error)
	List(q ListQuery) ([]User, error)
	Count(f Filter) (int, error)
	Create(u User) (User, error)
	Update(id int, u User) (User, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, user := range seed {
		repo.users = append(repo.users, user)
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) List(q ListQuery) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]User, 0)
	for _, user := range r.users {
		if q.Filter.matches(user) {
			matched = append(matched, user)
		}
	}

	sortUsers(matched, q.Sort)

	if q.Limit <= 0 {
		return matched, nil
	}
	if q.Offset >= len(matched) {
		return []User{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], nil
}

func (r *InMemoryRepository) Count(f Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, user := range r.users {
		if f.matches(user) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}

	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryRepository) Update(id int, update User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			update.ID = id
			r.users[i] = update
			return update, nil
		}
	}

	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (f Filter) matches(u User) bool {
	if f.Name != nil && !strings.Contains(u.Name, *f.Name) {
		return false
	}
	if f.PhoneNumber != nil && !strings.Contains(u.PhoneNumber, *f.PhoneNumber) {
		return false
	}
	if f.Address != nil && !strings.Contains(u.Address, *f.Address) {
		return false
	}
	if f.Age != nil && u.Age != *f.Age {
		return false
	}
	if f.EducationID != nil && (u.Education == nil || u.Education.ID != *f.EducationID) {
		return false
	}
	return true
}

func sortUsers(users []User, s Sort) {
	var less func(a, b User) bool
	switch s.By {
	case "id":
		less = func(a, b User) bool { return a.ID < b.ID }
	case "name":
		less = func(a, b User) bool { return a.Name < b.Name }
	case "phone_number":
		less = func(a, b User) bool { return a.PhoneNumber < b.PhoneNumber }
	case "address":
		less = func(a, b User) bool { return a.Address < b.Address }
	case "age":
		less = func(a, b User) bool { return a.Age < b.Age }
	default:
		return
	}

	sort.SliceStable(users, func(i, j int) bool {
		if s.Desc {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
}
