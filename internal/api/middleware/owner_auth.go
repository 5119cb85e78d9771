package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
)

const (
	HeaderOwnerPin = "X-Owner-PIN"

	msgOwnerPinRequired = "Se requiere el PIN del barbero."
	msgOwnerPinWrong    = "PIN incorrecto."
)

// OwnerAuth пропускает запрос, только если в X-Owner-PIN передан актуальный PIN барбера
// Состояния сессии нет, PIN проверяется на каждом запросе
func OwnerAuth(verifier PinVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(HeaderOwnerPin)
			if pin == "" {
				logger.Warn("OwnerAuth: %s %s - missing %s header", r.Method, r.URL.Path, HeaderOwnerPin)
				handlers.RespondUnauthorized(w, msgOwnerPinRequired)
				return
			}

			ok, err := verifier.VerifyPin(r.Context(), pin)
			if err != nil {
				logger.Error("OwnerAuth: %s %s - failed to verify pin: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}
			if !ok {
				logger.Warn("OwnerAuth: %s %s - wrong pin", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgOwnerPinWrong)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
