package repository

import (
	"context"
	"errors"

	"github.com/cafe-employee-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, cafeID string) ([]domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	DeleteByCafeID(ctx context.Context, cafeID string) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Omit("Cafe").Create(emp).Error
}

// GetByID возвращает сотрудника вместе с кафе. Если кафе не существует, Cafe == nil.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).
		Joins("Cafe").
		Where("employees.id = ?", id).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// List возвращает сотрудников по дате начала работы. Пустой cafeID - все сотрудники.
func (r *employeeRepository) List(ctx context.Context, cafeID string) ([]domain.Employee, error) {
	query := r.db.WithContext(ctx).Joins("Cafe")
	if cafeID != "" {
		query = query.Where("employees.cafe_id = ?", cafeID)
	}

	var employees []domain.Employee
	err := query.
		Order("employees.start_date ASC").
		Order("employees.created_at ASC").
		Find(&employees).Error
	return employees, err
}

// Update перезаписывает изменяемые поля. EmployeeID не меняется.
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]any{
			"name":       emp.Name,
			"email":      emp.Email,
			"phone":      emp.Phone,
			"gender":     emp.Gender,
			"start_date": emp.StartDate,
			"cafe_id":    emp.CafeID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete удаляет сотрудника; отсутствие записи не ошибка
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Employee{}).Error
}

func (r *employeeRepository) DeleteByCafeID(ctx context.Context, cafeID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Delete(&domain.Employee{})
	return result.RowsAffected, result.Error
}
