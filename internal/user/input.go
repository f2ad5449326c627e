package user

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field bounds enforced server-side.
const (
	maxNameLen    = 255
	maxPhoneLen   = 20
	maxAddressLen = 500
	minAge        = 1
	maxAge        = 150
)

const (
	msgRequired   = "Value is required and can't be empty"
	msgNotDigits  = "The input must contain only digits"
	msgAgeBetween = "The input is not between '1' and '150', inclusively"
)

func msgTooLong(max int) string {
	return "The input is more than " + strconv.Itoa(max) + " characters long"
}

var (
	validate    = validator.New()
	ageRangeTag = "gte=" + strconv.Itoa(minAge) + ",lte=" + strconv.Itoa(maxAge)
)

// Values is the normalized output of a successful validation pass.
type Values struct {
	Name        string
	PhoneNumber string
	Address     string
	Age         int
	EducationID *int
	ID          *int
}

// AllFields is the validation group for create requests: every field is
// checked, with education_id and id remaining optional.
var AllFields = []string{"name", "phone_number", "address", "age", "education_id", "id"}

// Validate checks the fields named in group against the submitted raw
// values. It returns either the normalized values or a map of field name
// to human-readable error messages. Pure function, no side effects.
func Validate(fields map[string]string, group []string) (Values, map[string][]string) {
	var vals Values
	messages := map[string][]string{}

	for _, field := range group {
		raw, present := fields[field]

		switch field {
		case "name":
			if v, ok := checkText(messages, field, raw, present, maxNameLen); ok {
				vals.Name = v
			}
		case "phone_number":
			if v, ok := checkText(messages, field, raw, present, maxPhoneLen); ok {
				vals.PhoneNumber = v
			}
		case "address":
			if v, ok := checkText(messages, field, raw, present, maxAddressLen); ok {
				vals.Address = v
			}
		case "age":
			if !present || strings.TrimSpace(raw) == "" {
				messages[field] = append(messages[field], msgRequired)
				continue
			}
			if validate.Var(raw, "number") != nil {
				messages[field] = append(messages[field], msgNotDigits)
				continue
			}
			age, _ := strconv.Atoi(raw)
			if validate.Var(age, ageRangeTag) != nil {
				messages[field] = append(messages[field], msgAgeBetween)
				continue
			}
			vals.Age = age
		case "education_id":
			if n, ok := checkOptionalDigits(messages, field, raw, present); ok {
				vals.EducationID = n
			}
		case "id":
			if n, ok := checkOptionalDigits(messages, field, raw, present); ok {
				vals.ID = n
			}
		}
	}

	if len(messages) > 0 {
		return Values{}, messages
	}
	return vals, nil
}

func checkText(messages map[string][]string, field, raw string, present bool, max int) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !present || trimmed == "" {
		messages[field] = append(messages[field], msgRequired)
		return "", false
	}
	if validate.Var(trimmed, "max="+strconv.Itoa(max)) != nil {
		messages[field] = append(messages[field], msgTooLong(max))
		return "", false
	}
	return trimmed, true
}

func checkOptionalDigits(messages map[string][]string, field, raw string, present bool) (*int, bool) {
	if !present || raw == "" {
		return nil, true
	}
	if validate.Var(raw, "number") != nil {
		messages[field] = append(messages[field], msgNotDigits)
		return nil, false
	}
	n, _ := strconv.Atoi(raw)
	return &n, true
}
