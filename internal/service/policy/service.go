package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	policyRepo "github.com/tekom-dev/TKM-BookingService/internal/infra/storage/policy"
)

// Service сервис конфигурации расписания.
// Чтение деградирует мягко: при отсутствии записи или недоступности
// хранилища отдаются дефолты, бронирование продолжает работать.
// Запись, наоборот, строгая: невалидная или несохраненная конфигурация
// возвращает ошибку администратору.
type Service struct {
	repo   PolicyRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(repo PolicyRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает действующую конфигурацию расписания
func (s *Service) Get(ctx context.Context) (*domain.SchedulingPolicy, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		switch {
		case errors.Is(err, policyRepo.ErrPolicyNotFound):
			return domain.DefaultSchedulingPolicy(), nil
		case errors.Is(err, policyRepo.ErrUnavailable):
			s.logger.Warn("Get: policy storage unavailable, using defaults: %v", err)
			return domain.DefaultSchedulingPolicy(), nil
		default:
			s.logger.Error("Get: failed to read policy: %v", err)
			return nil, fmt.Errorf("%w: failed to read policy: %v", ErrInternal, err)
		}
	}

	// Старые записи могут не знать новых полей; добиваем дефолтами
	applyDefaults(p)

	return p, nil
}

// Replace целиком заменяет конфигурацию расписания
func (s *Service) Replace(ctx context.Context, p *domain.SchedulingPolicy) (*domain.SchedulingPolicy, error) {
	s.logger.Info("Replace: saving scheduling config")

	if err := validatePolicy(p); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, err
	}

	applyDefaults(p)

	if err := s.repo.Set(ctx, p); err != nil {
		if errors.Is(err, policyRepo.ErrUnavailable) {
			s.logger.Error("Replace: policy storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		s.logger.Error("Replace: failed to write policy: %v", err)
		return nil, fmt.Errorf("%w: failed to write policy: %v", ErrInternal, err)
	}

	return p, nil
}

func applyDefaults(p *domain.SchedulingPolicy) {
	if p.WorkingDays == nil {
		p.WorkingDays = domain.DefaultSchedulingPolicy().WorkingDays
	}
	if p.Breaks == nil {
		p.Breaks = []domain.BreakWindow{}
	}
	if p.BlockedDates == nil {
		p.BlockedDates = []string{}
	}
	if p.BlockedPeriods == nil {
		p.BlockedPeriods = []domain.BlockedPeriod{}
	}
}
