package export

import (
	"errors"
	"strconv"
	"time"

	"user-registry-backend/internal/user"
)

var (
	ErrFormatRequired    = errors.New("format parameter is required")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Document is a generated report ready to be sent as an attachment.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

var reportColumns = []string{"ID", "Full Name", "Phone Number", "Address", "Age", "Education"}

// Service renders the filtered user list into downloadable documents.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Export produces the report in the requested format over the full
// filtered and sorted user set. Pagination does not apply to exports.
func (s *Service) Export(format string, f user.Filter, sort user.Sort) (Document, error) {
	if format == "" {
		return Document{}, ErrFormatRequired
	}

	var write func([]user.User) ([]byte, error)
	var contentType, ext string
	switch format {
	case "xls":
		write = writeXLSX
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	case "pdf":
		write = writePDF
		contentType = "application/pdf"
		ext = "pdf"
	default:
		return Document{}, ErrUnsupportedFormat
	}

	users, err := s.users.List(user.ListQuery{Filter: f, Sort: sort})
	if err != nil {
		return Document{}, err
	}

	data, err := write(users)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Filename:    "users_report_" + time.Now().Format("2006-01-02_15-04-05") + "." + ext,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func reportRow(u user.User) []string {
	educationName := ""
	if u.Education != nil {
		educationName = u.Education.Name
	}

	return []string{
		strconv.Itoa(u.ID),
		u.Name,
		u.PhoneNumber,
		u.Address,
		strconv.Itoa(u.Age),
		educationName,
	}
}
