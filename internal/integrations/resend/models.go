package resend

// ConfirmationEmail данные письма-подтверждения
type ConfirmationEmail struct {
	To          string
	Name        string // имя для обращения
	Date        string // человекочитаемая дата, напр. "Montag, 5. Januar 2026"
	Time        string // человекочитаемое время, напр. "15:00 Uhr"
	MeetingLink string
	BookingID   string // для ссылок отмены и переноса
}

// ReminderEmail данные письма-напоминания
type ReminderEmail struct {
	To          string
	Name        string
	Date        string
	Time        string
	MeetingLink string
	HoursUntil  int // 1 или 24
}

// CancellationEmail данные письма об отмене
type CancellationEmail struct {
	To   string
	Name string
	Date string
	Time string
}

// CVBackupEmail резервная копия резюме для оператора
type CVBackupEmail struct {
	CandidateName  string
	CandidateEmail string
	Position       string
	FileName       string
	Content        []byte
}

// ── wire-модели Resend API ──

type emailAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // base64
}

type sendEmailBody struct {
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html"`
	Attachments []emailAttachment `json:"attachments,omitempty"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

type resendErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
