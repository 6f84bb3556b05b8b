package create_booking

import (
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// CVFile загруженный файл резюме
type CVFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// Request модель запроса на создание бронирования
type Request struct {
	Slot      domain.Slot
	Candidate domain.CandidateProfile
	CV        *CVFile // опционально
}

// Response модель ответа на создание бронирования.
// Успех определяется созданием события и записи; письма и загрузка
// резюме на результат не влияют.
type Response struct {
	BookingID   string
	EventID     string
	MeetingLink string
	Date        string // YYYY-MM-DD
	Time        types.TimeString
}
