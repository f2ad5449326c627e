package education

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Education, error) {
	return s.repo.List()
}

func (s *Service) Get(id int) (Education, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(name string) (Education, error) {
	if strings.TrimSpace(name) == "" {
		return Education{}, ErrNameRequired
	}

	return s.repo.Create(Education{Name: name})
}

// Update changes the name when one is supplied; a nil name leaves the
// record untouched, matching the field-by-field PUT semantics.
func (s *Service) Update(id int, name *string) (Education, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Education{}, err
	}

	if name != nil {
		existing.Name = *name
	}

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
