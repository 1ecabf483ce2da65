package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cafe-employee-api/internal/domain"
	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/repository"
	"github.com/cafe-employee-api/internal/storage"
	"github.com/cafe-employee-api/internal/validation"
)

// CafeService определяет интерфейс бизнес-логики для кафе
type CafeService interface {
	List(ctx context.Context, location string) ([]domain.CafeSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Cafe, error)
	Create(ctx context.Context, input *dto.CafeInput) (*domain.Cafe, error)
	Update(ctx context.Context, id string, input *dto.CafeInput) (*domain.Cafe, error)
	Delete(ctx context.Context, id string) error
}

type cafeService struct {
	cafeRepo  repository.CafeRepository
	files     storage.FileStorage
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCafeService создаёт новый экземпляр сервиса
func NewCafeService(
	cafeRepo repository.CafeRepository,
	files storage.FileStorage,
	validator *validation.Validator,
	logger *slog.Logger,
) CafeService {
	return &cafeService{
		cafeRepo:  cafeRepo,
		files:     files,
		validator: validator,
		logger:    logger,
	}
}

func (s *cafeService) List(ctx context.Context, location string) ([]domain.CafeSummary, error) {
	return s.cafeRepo.List(ctx, location)
}

func (s *cafeService) GetByID(ctx context.Context, id string) (*domain.Cafe, error) {
	return s.cafeRepo.GetByIDWithEmployees(ctx, id)
}

func (s *cafeService) Create(ctx context.Context, input *dto.CafeInput) (*domain.Cafe, error) {
	if err := s.validator.Cafe(input); err != nil {
		return nil, err
	}

	cafe := &domain.Cafe{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
	}

	if input.Logo != nil {
		stored, err := s.files.Save(input.Logo)
		if err != nil {
			return nil, fmt.Errorf("failed to store logo: %w", err)
		}
		cafe.Logo = &stored
	}

	if err := s.cafeRepo.Create(ctx, cafe); err != nil {
		s.removeLogo(cafe.Logo)
		return nil, err
	}

	return cafe, nil
}

// Update перезаписывает поля кафе. Логотип меняется, только если загружен новый.
func (s *cafeService) Update(ctx context.Context, id string, input *dto.CafeInput) (*domain.Cafe, error) {
	if err := s.validator.Cafe(input); err != nil {
		return nil, err
	}

	cafe, err := s.cafeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cafe.Name = input.Name
	cafe.Description = input.Description
	cafe.Location = input.Location

	previousLogo := cafe.Logo
	if input.Logo != nil {
		stored, err := s.files.Save(input.Logo)
		if err != nil {
			return nil, fmt.Errorf("failed to store logo: %w", err)
		}
		cafe.Logo = &stored
	}

	if err := s.cafeRepo.Update(ctx, cafe); err != nil {
		if input.Logo != nil {
			s.removeLogo(cafe.Logo)
		}
		return nil, err
	}

	if input.Logo != nil {
		s.removeLogo(previousLogo)
	}

	return cafe, nil
}

func (s *cafeService) Delete(ctx context.Context, id string) error {
	removed, err := s.cafeRepo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("cafe deleted",
		slog.String("cafe_id", id),
		slog.Int64("employees_removed", removed),
	)
	return nil
}

func (s *cafeService) removeLogo(logo *string) {
	if logo == nil || strings.TrimSpace(*logo) == "" {
		return
	}
	if err := s.files.Remove(*logo); err != nil {
		s.logger.Warn("failed to remove logo", slog.String("logo", *logo), slog.Any("error", err))
	}
}
