package repository

import (
	"context"
	"errors"

	"github.com/cafe-employee-api/internal/domain"
	"gorm.io/gorm"
)

// CafeRepository определяет интерфейс для работы с кафе
type CafeRepository interface {
	Create(ctx context.Context, cafe *domain.Cafe) error
	GetByID(ctx context.Context, id string) (*domain.Cafe, error)
	GetByIDWithEmployees(ctx context.Context, id string) (*domain.Cafe, error)
	List(ctx context.Context, location string) ([]domain.CafeSummary, error)
	Update(ctx context.Context, cafe *domain.Cafe) error
	DeleteCascade(ctx context.Context, id string) (int64, error)
}

type cafeRepository struct {
	db *gorm.DB
}

// NewCafeRepository создаёт новый экземпляр репозитория
func NewCafeRepository(db *gorm.DB) CafeRepository {
	return &cafeRepository{db: db}
}

func (r *cafeRepository) Create(ctx context.Context, cafe *domain.Cafe) error {
	return r.db.WithContext(ctx).Create(cafe).Error
}

func (r *cafeRepository) GetByID(ctx context.Context, id string) (*domain.Cafe, error) {
	var cafe domain.Cafe
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

func (r *cafeRepository) GetByIDWithEmployees(ctx context.Context, id string) (*domain.Cafe, error) {
	var cafe domain.Cafe
	err := r.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Where("id = ?", id).
		First(&cafe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// List возвращает кафе с количеством сотрудников, больше сотрудников - выше.
// Пустой location означает все кафе, иначе точное совпадение.
func (r *cafeRepository) List(ctx context.Context, location string) ([]domain.CafeSummary, error) {
	query := r.db.WithContext(ctx).
		Table("cafes").
		Select("cafes.id, cafes.name, cafes.description, cafes.location, cafes.logo, COUNT(employees.id) AS employee_count").
		Joins("LEFT JOIN employees ON employees.cafe_id = cafes.id")

	if location != "" {
		query = query.Where("cafes.location = ?", location)
	}

	var cafes []domain.CafeSummary
	err := query.
		Group("cafes.id, cafes.name, cafes.description, cafes.location, cafes.logo").
		Order("employee_count DESC").
		Order("cafes.name ASC").
		Scan(&cafes).Error
	return cafes, err
}

func (r *cafeRepository) Update(ctx context.Context, cafe *domain.Cafe) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Cafe{}).
		Where("id = ?", cafe.ID).
		Updates(map[string]any{
			"name":        cafe.Name,
			"description": cafe.Description,
			"location":    cafe.Location,
			"logo":        cafe.Logo,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCafeNotFound
	}
	return nil
}

// DeleteCascade удаляет сотрудников кафе, затем само кафе, в одной транзакции.
// Отсутствие кафе не ошибка. Возвращает количество удалённых сотрудников.
func (r *cafeRepository) DeleteCascade(ctx context.Context, id string) (int64, error) {
	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := NewEmployeeRepository(tx).DeleteByCafeID(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		return tx.Where("id = ?", id).Delete(&domain.Cafe{}).Error
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
