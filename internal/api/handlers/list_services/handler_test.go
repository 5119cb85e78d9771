package list_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeCatalog []models.ServiceResponse

func (f fakeCatalog) ListServices() []models.ServiceResponse { return f }

func TestHandle(t *testing.T) {
	catalog := fakeCatalog{
		{Name: "Corte", DurationMinutes: 45, Price: 15000},
		{Name: "Barba", DurationMinutes: 15, Price: 5000},
	}
	h := NewHandler(catalog, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListServicesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Corte", resp.Services[0].Name)
	assert.Equal(t, 45, resp.Services[0].DurationMinutes)
}
