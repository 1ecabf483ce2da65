package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"

	"github.com/cafe-employee-api/internal/validation"
)

// jsonFields читает JSON-объект и достаёт из него строковые поля.
// Отсутствующее или нестроковое поле попадает в problems, запрос при этом
// не отклоняется. Ошибка возвращается только для тела, которое не является объектом.
func jsonFields(body io.Reader, fields ...string) (values, problems map[string]string, err error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, nil, err
	}

	values = make(map[string]string, len(fields))
	problems = make(map[string]string)

	for _, field := range fields {
		msg, ok := raw[field]
		if !ok {
			problems[field] = validation.RequiredMessage
			continue
		}

		if kind := jsonKind(msg); kind != "string" {
			problems[field] = validation.TypeMessage(kind)
			continue
		}

		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil, nil, err
		}
		values[field] = s
	}

	return values, problems, nil
}

// formFields достаёт поля из формы; отсутствующее поле попадает в problems
func formFields(form url.Values, fields ...string) (values, problems map[string]string) {
	values = make(map[string]string, len(fields))
	problems = make(map[string]string)

	for _, field := range fields {
		v, ok := form[field]
		if !ok || len(v) == 0 {
			problems[field] = validation.RequiredMessage
			continue
		}
		values[field] = v[0]
	}

	return values, problems
}

// jsonKind называет тип JSON-значения так же, как его называют сообщения об ошибках
func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}

	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
