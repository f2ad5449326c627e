package user

import (
	"errors"
	"math"

	"user-registry-backend/internal/education"
)

// ValidationError carries the per-field messages of a failed validation
// pass up to the transport layer.
type ValidationError struct {
	Messages map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// Service orchestrates user CRUD plus list filtering, sorting and paging.
type Service struct {
	repo       Repository
	educations education.Repository
}

func NewService(repo Repository, educations education.Repository) *Service {
	return &Service{repo: repo, educations: educations}
}

func (s *Service) Get(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(fields map[string]string) (User, error) {
	vals, messages := Validate(fields, AllFields)
	if messages != nil {
		return User{}, &ValidationError{Messages: messages}
	}

	u := User{
		Name:        vals.Name,
		PhoneNumber: vals.PhoneNumber,
		Address:     vals.Address,
		Age:         vals.Age,
	}

	if vals.EducationID != nil {
		ref, err := s.resolveEducation(*vals.EducationID)
		if err != nil {
			return User{}, err
		}
		// an unresolvable id leaves the user without an education
		u.Education = ref
	}

	return s.repo.Create(u)
}

// Update applies only the submitted fields; everything else keeps its
// stored value.
func (s *Service) Update(id int, fields map[string]string) (User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	group := make([]string, 0, len(fields))
	for field := range fields {
		group = append(group, field)
	}

	vals, messages := Validate(fields, group)
	if messages != nil {
		return User{}, &ValidationError{Messages: messages}
	}

	if _, ok := fields["name"]; ok {
		u.Name = vals.Name
	}
	if _, ok := fields["phone_number"]; ok {
		u.PhoneNumber = vals.PhoneNumber
	}
	if _, ok := fields["address"]; ok {
		u.Address = vals.Address
	}
	if _, ok := fields["age"]; ok {
		u.Age = vals.Age
	}
	if _, ok := fields["education_id"]; ok {
		u.Education = nil
		if vals.EducationID != nil {
			ref, err := s.resolveEducation(*vals.EducationID)
			if err != nil {
				return User{}, err
			}
			u.Education = ref
		}
	}

	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is one page of users plus its pagination metadata.
type Page struct {
	Data       []User     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// List returns the users matching f, sorted and paged. The total count
// runs as a separate query under the same filter.
func (s *Service) List(f Filter, sort Sort, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	users, err := s.repo.List(ListQuery{
		Filter: f,
		Sort:   sort,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return Page{}, err
	}
	if users == nil {
		users = []User{}
	}

	total, err := s.repo.Count(f)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Data: users,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *Service) resolveEducation(id int) (*EducationRef, error) {
	edu, err := s.educations.GetByID(id)
	if err != nil {
		if errors.Is(err, education.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &EducationRef{ID: edu.ID, Name: edu.Name}, nil
}
