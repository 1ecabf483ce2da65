// Package idgen выдаёт человекочитаемые коды сотрудников.
package idgen

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	prefix   = "UI"
	length   = 7
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// EmployeeID возвращает код вида UI1A2B3C4. Код не связан с ключом записи,
// уникальность дополнительно гарантирует индекс employees.employee_id.
func EmployeeID() string {
	return prefix + gonanoid.MustGenerate(alphabet, length)
}
