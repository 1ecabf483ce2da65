package dto

import (
	"io"
)

// CafeInput - данные для создания или обновления кафе
type CafeInput struct {
	Name        string        `json:"name" validate:"min=6,max=10"`
	Description string        `json:"description" validate:"min=1,max=256"`
	Location    string        `json:"location" validate:"min=1,max=255"`
	Logo        *UploadedFile `json:"logo"`

	// DecodeErrors - поля, которые не удалось прочитать из запроса (нет в теле
	// или пришли не строкой). Сообщение заменяет ошибки правил для поля.
	DecodeErrors map[string]string `json:"-" validate:"-"`
}

// UploadedFile - загруженный файл логотипа
type UploadedFile struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType" validate:"oneof=image/jpeg image/jpg image/png image/webp"`
	Size        int64     `json:"size" validate:"max=2000000"`
	Content     io.Reader `json:"-" validate:"-"`
}

// EmployeeInput - данные для создания или обновления сотрудника
type EmployeeInput struct {
	Name      string `json:"name" validate:"min=1,max=100"`
	Email     string `json:"email" validate:"email"`
	Phone     string `json:"phone" validate:"phone"`
	Gender    string `json:"gender" validate:"oneof=Male Female"`
	StartDate string `json:"startDate" validate:"isodate"`
	CafeID    string `json:"cafeId" validate:"uuid"`

	DecodeErrors map[string]string `json:"-" validate:"-"`
}

// DataResponse - успешный ответ
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse - ответ с ошибкой: строка или карта ошибок по полям
type ErrorResponse struct {
	Error any `json:"error"`
}

// IDResponse - идентификатор созданной или обновлённой записи
type IDResponse struct {
	ID string `json:"id"`
}

// CafeListItem - кафе в списке
type CafeListItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
	Location    string  `json:"location"`
	Employees   int64   `json:"employees"`
}

// CafeResponse - кафе со списком сотрудников
type CafeResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Logo        *string            `json:"logo"`
	Location    string             `json:"location"`
	Employees   []EmployeeResponse `json:"employees"`
}

// EmployeeResponse - сотрудник внутри кафе
type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	StartDate  string `json:"startDate"`
	CafeID     string `json:"cafeId"`
}

// CafeRef - кафе, к которому привязан сотрудник
type CafeRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// EmployeeListItem - сотрудник в списке с вычисленным стажем
type EmployeeListItem struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employeeId"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Gender     string   `json:"gender"`
	StartDate  string   `json:"startDate"`
	Cafe       *CafeRef `json:"cafe"`
	DaysWorked int      `json:"daysWorked"`
}

// EmployeeDetail - сотрудник с кафе
type EmployeeDetail struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employeeId"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Gender     string   `json:"gender"`
	StartDate  string   `json:"startDate"`
	Cafe       *CafeRef `json:"cafe"`
}
