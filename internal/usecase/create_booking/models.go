package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName string           // Имя клиента
	Phone      string           // Телефон, формат не проверяется
	Service    string           // Название услуги из каталога
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала, например "10:00"
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID записи
	Reference  string           // Пятизначный код для клиента
	ClientName string           // Имя клиента
	Phone      string           // Телефон
	Service    string           // Название услуги
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала

	// Данные из каталога на момент записи
	DurationMinutes int
	Price           int64

	CreatedAt time.Time
}
