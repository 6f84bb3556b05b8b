package send_reminders

// Response итог прохода по напоминаниям
type Response struct {
	Sent24h int      `json:"sent24h"`
	Sent1h  int      `json:"sent1h"`
	Errors  []string `json:"errors"`
}
