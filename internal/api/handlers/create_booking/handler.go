package create_booking

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
	createBooking "github.com/tekom-dev/TKM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Ungültiger Anfrageinhalt"
	msgInvalidTime        = "Ungültiges Zeitformat, erwartet wird HH:MM"
	msgMissingFields      = "Fehlende erforderliche Felder"
	msgCalendarFailed     = "Der Termin konnte nicht im Kalender angelegt werden"
	msgPersistenceFailed  = "Die Buchung konnte nicht gespeichert werden"
)

// maxUploadBytes ограничивает размер multipart-запроса вместе с резюме
const maxUploadBytes = 10 << 20

type Handler struct {
	useCase         CreateBookingUseCase
	defaultDuration int
	logger          Logger
}

func NewHandler(useCase CreateBookingUseCase, defaultDurationMinutes int, logger Logger) *Handler {
	return &Handler{
		useCase:         useCase,
		defaultDuration: defaultDurationMinutes,
		logger:          logger,
	}
}

// Handle POST /api/v1/bookings
// Принимает multipart/form-data с полями date, time, duration, formData
// (JSON-строка) и необязательным файлом cv, либо чистый JSON без файла.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		req *CreateBookingRequest
		cv  *createBooking.CVFile
		err error
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		req, cv, err = h.parseMultipart(r)
	} else {
		req, err = h.parseJSON(r)
	}
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date == "" || req.Time == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if req.Duration == 0 {
		req.Duration = h.defaultDuration
	}

	useCaseReq, err := req.ToUseCaseRequest(cv)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrCalendar):
			h.logger.Error("POST /bookings - Calendar failed: %v", err)
			handlers.RespondBadGateway(w, msgCalendarFailed)

		case errors.Is(err, createBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Persistence failed: %v", err)
			handlers.RespondBadGateway(w, msgPersistenceFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) parseJSON(r *http.Request) (*CreateBookingRequest, error) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *Handler) parseMultipart(r *http.Request) (*CreateBookingRequest, *createBooking.CVFile, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, err
	}

	req := &CreateBookingRequest{
		Date: r.FormValue("date"),
		Time: r.FormValue("time"),
	}

	if raw := r.FormValue("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, err
		}
		req.Duration = duration
	}

	if raw := r.FormValue("formData"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.FormData); err != nil {
			return nil, nil, err
		}
	}

	cv, err := h.parseCV(r)
	if err != nil {
		return nil, nil, err
	}

	return req, cv, nil
}

func (h *Handler) parseCV(r *http.Request) (*createBooking.CVFile, error) {
	file, header, err := r.FormFile("cv")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &createBooking.CVFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
