package export

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"user-registry-backend/internal/user"
)

func seedUsers() []user.User {
	return []user.User{
		{ID: 1, Name: "Jan Kowalski", PhoneNumber: "+48 123 456 789", Address: "ul. Testowa 1", Age: 30,
			Education: &user.EducationRef{ID: 2, Name: "Higher"}},
		{ID: 2, Name: "Anna Nowak", PhoneNumber: "555", Address: "ul. Polna 2", Age: 25},
	}
}

func TestExportFormatRequired(t *testing.T) {
	service := NewService(user.NewInMemoryRepository(nil))

	if _, err := service.Export("", user.Filter{}, user.Sort{}); !errors.Is(err, ErrFormatRequired) {
		t.Fatalf("expected ErrFormatRequired, got %v", err)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	service := NewService(user.NewInMemoryRepository(nil))

	if _, err := service.Export("csv", user.Filter{}, user.Sort{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExportXLSXRoundTrip(t *testing.T) {
	service := NewService(user.NewInMemoryRepository(seedUsers()))

	doc, err := service.Export("xls", user.Filter{}, user.Sort{By: "id"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if doc.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type = %q", doc.ContentType)
	}
	if !strings.HasPrefix(doc.Filename, "users_report_") || !strings.HasSuffix(doc.Filename, ".xlsx") {
		t.Fatalf("filename = %q", doc.Filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], reportColumns) {
		t.Fatalf("header = %v, want %v", rows[0], reportColumns)
	}
	if rows[1][1] != "Jan Kowalski" || rows[1][5] != "Higher" {
		t.Fatalf("first data row = %v", rows[1])
	}
	// user without education: the trailing cell is blank or trimmed
	if len(rows[2]) == 6 && rows[2][5] != "" {
		t.Fatalf("education cell should be blank: %v", rows[2])
	}
}

func TestExportAppliesFilter(t *testing.T) {
	service := NewService(user.NewInMemoryRepository(seedUsers()))

	age := 25
	doc, err := service.Export("xls", user.Filter{Age: &age}, user.Sort{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus 1", len(rows))
	}
	if rows[1][1] != "Anna Nowak" {
		t.Fatalf("filtered row = %v", rows[1])
	}
}

func TestReportHTMLEscapesCellText(t *testing.T) {
	users := []user.User{{
		ID:          1,
		Name:        `<script>alert("x")</script>`,
		PhoneNumber: "a&b",
		Address:     "<b>bold</b>",
		Age:         30,
	}}

	html, err := reportHTML(users)
	if err != nil {
		t.Fatalf("building html: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("script tag not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in %s", html)
	}
	if !strings.Contains(html, "a&amp;b") {
		t.Fatal("ampersand not escaped")
	}
}

func TestReportHTMLContainsAllColumns(t *testing.T) {
	html, err := reportHTML(nil)
	if err != nil {
		t.Fatalf("building html: %v", err)
	}
	for _, col := range reportColumns {
		if !strings.Contains(html, "<th>"+col+"</th>") {
			t.Fatalf("missing column header %q", col)
		}
	}
}
