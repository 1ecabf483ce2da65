package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cafe-employee-api/internal/domain"
	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/idgen"
	"github.com/cafe-employee-api/internal/repository"
	"github.com/cafe-employee-api/internal/validation"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, cafeID string) ([]domain.EmployeeSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input *dto.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input *dto.EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeOption настраивает сервис сотрудников
type EmployeeOption func(*employeeService)

// WithClock подменяет источник текущего времени для расчёта стажа
func WithClock(now func() time.Time) EmployeeOption {
	return func(s *employeeService) {
		s.now = now
	}
}

// WithIDGenerator подменяет генератор кодов сотрудников
func WithIDGenerator(gen func() string) EmployeeOption {
	return func(s *employeeService) {
		s.newEmployeeID = gen
	}
}

type employeeService struct {
	empRepo       repository.EmployeeRepository
	validator     *validation.Validator
	now           func() time.Time
	newEmployeeID func() string
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	validator *validation.Validator,
	opts ...EmployeeOption,
) EmployeeService {
	s := &employeeService{
		empRepo:       empRepo,
		validator:     validator,
		now:           time.Now,
		newEmployeeID: idgen.EmployeeID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List возвращает сотрудников со стажем на момент запроса
func (s *employeeService) List(ctx context.Context, cafeID string) ([]domain.EmployeeSummary, error) {
	employees, err := s.empRepo.List(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]domain.EmployeeSummary, len(employees))
	for i := range employees {
		result[i] = domain.EmployeeSummary{
			Employee:   employees[i],
			DaysWorked: employees[i].DaysWorked(now),
		}
	}
	return result, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

// Create создаёт сотрудника. Существование кафе не проверяется.
func (s *employeeService) Create(ctx context.Context, input *dto.EmployeeInput) (*domain.Employee, error) {
	emp, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}

	emp.EmployeeID = s.newEmployeeID()

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

// Update перезаписывает данные сотрудника; EmployeeID остаётся прежним
func (s *employeeService) Update(ctx context.Context, id string, input *dto.EmployeeInput) (*domain.Employee, error) {
	emp, err := s.fromInput(input)
	if err != nil {
		return nil, err
	}

	emp.ID = id
	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.empRepo.Delete(ctx, id)
}

func (s *employeeService) fromInput(input *dto.EmployeeInput) (*domain.Employee, error) {
	if err := s.validator.Employee(input); err != nil {
		return nil, err
	}

	// Шаблон даты уже проверен, но дата может не существовать (2024-13-40)
	startDate, err := time.Parse(domain.DateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", input.StartDate, err)
	}

	return &domain.Employee{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Gender:    domain.Gender(input.Gender),
		StartDate: startDate,
		CafeID:    input.CafeID,
	}, nil
}
