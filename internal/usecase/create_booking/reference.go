package create_booking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// generateReference подбирает свободный пятизначный код
// До MaxReferenceAttempts случайных попыток, затем код из последних цифр unix-времени.
// Запасной код не гарантирует уникальность, поэтому он логируется как ошибка и считается в метриках
func (uc *UseCase) generateReference(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= domain.MaxReferenceAttempts; attempt++ {
		candidate := strconv.Itoa(domain.ReferenceMin + uc.randIntN(domain.ReferenceMax-domain.ReferenceMin+1))

		exists, err := uc.appointmentRepo.ExistsReference(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: generateReference - check reference: %w", ErrInternal, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	fallback := fallbackReference(uc.timeProvider.Now().Unix())
	uc.logger.Error("CreateBooking: %d reference attempts collided, falling back to timestamp code=%s (uniqueness not guaranteed)",
		domain.MaxReferenceAttempts, fallback)
	uc.metrics.IncReferenceFallback()

	return fallback, nil
}

// fallbackReference последние пять цифр unix-времени
func fallbackReference(unix int64) string {
	s := strconv.FormatInt(unix, 10)
	if len(s) > domain.ReferenceDigits {
		s = s[len(s)-domain.ReferenceDigits:]
	}
	return s
}
