package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout - формат даты начала работы сотрудника
const DateLayout = "2006-01-02"

// Gender - пол сотрудника
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Cafe представляет кафе
type Cafe struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:varchar(256);not null"`
	Location    string    `json:"location" gorm:"type:varchar(255);not null;index"`
	Logo        *string   `json:"logo"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:CafeID"`
}

// TableName задаёт имя таблицы для GORM
func (Cafe) TableName() string {
	return "cafes"
}

// BeforeCreate назначает UUID новой записи
func (c *Cafe) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CafeSummary - кафе в списке, вместо сотрудников только их количество
type CafeSummary struct {
	ID            string
	Name          string
	Description   string
	Location      string
	Logo          *string
	EmployeeCount int64
}

// Employee представляет сотрудника кафе
type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID string    `json:"employee_id" gorm:"type:varchar(16);not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone      string    `json:"phone" gorm:"type:varchar(8);not null"`
	Gender     Gender    `json:"gender" gorm:"type:varchar(6);not null"`
	StartDate  time.Time `json:"start_date" gorm:"type:date;not null"`
	CafeID     string    `json:"cafe_id" gorm:"type:varchar(36);not null;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Cafe *Cafe `json:"-" gorm:"foreignKey:CafeID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate назначает UUID новой записи
func (e *Employee) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// DaysWorked возвращает количество полных дней от даты начала работы до now.
// Для даты в будущем значение отрицательное.
func (e *Employee) DaysWorked(now time.Time) int {
	return int(now.Sub(e.StartDate) / (24 * time.Hour))
}

// EmployeeSummary - сотрудник с вычисленным стажем
type EmployeeSummary struct {
	Employee
	DaysWorked int
}
