package get_available_slots

import (
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StartDate       string // Начало диапазона, YYYY-MM-DD
	EndDate         string // Конец диапазона (включительно), YYYY-MM-DD
	DurationMinutes int    // Длительность встречи; 0 означает длительность из конфигурации
}

// Response модель ответа со списком доступных слотов по дням
type Response struct {
	Slots []domain.TimeSlotDay // Дни без свободных слотов опускаются
}
