package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	configRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/config"
)

// Service доступ барбера к панели по PIN
// Блокировки после неверных попыток нет
type Service struct {
	configRepo ConfigRepository
	defaultPin string
	logger     Logger
}

// NewService создает новый экземпляр сервиса доступа
// defaultPin используется, пока PIN не записан в хранилище
func NewService(configRepo ConfigRepository, defaultPin string, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		defaultPin: defaultPin,
		logger:     logger,
	}
}

// EnsureDefaultPin записывает PIN по умолчанию, если его ещё нет
func (s *Service) EnsureDefaultPin(ctx context.Context) error {
	created, err := s.configRepo.SetIfAbsent(ctx, domain.PinConfigKey, s.defaultPin)
	if err != nil {
		s.logger.Error("EnsureDefaultPin: failed to seed pin: %v", err)
		return fmt.Errorf("%w: EnsureDefaultPin - repository error: %v", ErrInternal, err)
	}
	if created {
		s.logger.Warn("EnsureDefaultPin: owner pin was not set, seeded the default one")
	}
	return nil
}

// VerifyPin сравнивает кандидата с сохранённым PIN (пробелы по краям игнорируются)
func (s *Service) VerifyPin(ctx context.Context, candidate string) (bool, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false, nil
	}

	pin, err := s.currentPin(ctx)
	if err != nil {
		return false, err
	}

	ok := candidate == pin
	if !ok {
		s.logger.Warn("VerifyPin: wrong pin")
	}
	return ok, nil
}

// ChangePin меняет PIN, если current совпадает с сохранённым
// Проверки формы идут в порядке: все поля заполнены, 4 цифры, подтверждение совпадает
func (s *Service) ChangePin(ctx context.Context, current, newPin, confirm string) error {
	if current == "" || newPin == "" || confirm == "" {
		return ErrInvalidInput
	}
	if !isValidPin(newPin) {
		return ErrInvalidPinFormat
	}
	if newPin != confirm {
		return ErrPinMismatch
	}

	// Без записи в хранилище CAS не сработает, поэтому сначала сеем PIN по умолчанию
	if _, err := s.configRepo.Get(ctx, domain.PinConfigKey); errors.Is(err, configRepo.ErrConfigNotFound) {
		if err := s.EnsureDefaultPin(ctx); err != nil {
			return err
		}
	}

	swapped, err := s.configRepo.CompareAndSet(ctx, domain.PinConfigKey, current, newPin)
	if err != nil {
		s.logger.Error("ChangePin: repository error: %v", err)
		return fmt.Errorf("%w: ChangePin - repository error: %v", ErrInternal, err)
	}
	if !swapped {
		s.logger.Warn("ChangePin: current pin does not match")
		return ErrWrongPin
	}

	s.logger.Info("ChangePin: owner pin changed")
	return nil
}

func (s *Service) currentPin(ctx context.Context) (string, error) {
	pin, err := s.configRepo.Get(ctx, domain.PinConfigKey)
	if errors.Is(err, configRepo.ErrConfigNotFound) {
		return s.defaultPin, nil
	}
	if err != nil {
		s.logger.Error("currentPin: repository error: %v", err)
		return "", fmt.Errorf("%w: currentPin - repository error: %v", ErrInternal, err)
	}
	return pin, nil
}

func isValidPin(pin string) bool {
	if len(pin) != domain.PinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
