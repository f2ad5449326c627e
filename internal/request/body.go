package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Fields normalizes a JSON or form-encoded request body into a flat map of
// field name to raw string value, so the services never see transport types.
// JSON numbers keep their literal digits, null values count as absent.
// The second return value is false when the body holds no usable data.
func Fields(c *fiber.Ctx) (map[string]string, bool) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return jsonFields(c.Body())
	}
	return formFields(c)
}

func jsonFields(body []byte) (map[string]string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || len(raw) == 0 {
		return nil, false
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		case bool:
			fields[key] = strconv.FormatBool(v)
		default:
			fields[key] = fmt.Sprint(v)
		}
	}
	return fields, true
}

func formFields(c *fiber.Ctx) (map[string]string, bool) {
	args := c.Request().PostArgs()
	if args.Len() == 0 {
		return nil, false
	}

	fields := make(map[string]string, args.Len())
	args.VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields, true
}
