package resend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendBaseURL = "https://api.resend.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент почтового провайдера Resend.
// Отправляет письма без повторов; решение о повторной отправке за вызывающим.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	apiKey        string
	from          string // "Name <addr>"
	operatorEmail string
	appBaseURL    string // публичный URL для ссылок отмены и переноса
	log           Logger
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(apiKey, fromEmail, fromName, operatorEmail, appBaseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       resendBaseURL,
		httpClient:    &http.Client{Timeout: timeout},
		apiKey:        apiKey,
		from:          fmt.Sprintf("%s <%s>", fromName, fromEmail),
		operatorEmail: operatorEmail,
		appBaseURL:    appBaseURL,
		log:           log,
	}
}

// SendConfirmation отправляет кандидату подтверждение бронирования
func (c *Client) SendConfirmation(ctx context.Context, email ConfirmationEmail) error {
	cancelLink := fmt.Sprintf("%s/booking/cancel/%s", c.appBaseURL, email.BookingID)
	rescheduleLink := fmt.Sprintf("%s/booking/reschedule/%s", c.appBaseURL, email.BookingID)

	return c.send(ctx, sendEmailBody{
		From:    c.from,
		To:      []string{email.To},
		Subject: fmt.Sprintf("Terminbestätigung: %s um %s", email.Date, email.Time),
		HTML:    confirmationHTML(email, cancelLink, rescheduleLink),
	})
}

// SendReminder отправляет кандидату напоминание за 24 часа или за 1 час
func (c *Client) SendReminder(ctx context.Context, email ReminderEmail) error {
	var subject string
	if email.HoursUntil == 1 {
		subject = "Erinnerung: Ihr Termin in 1 Stunde"
	} else {
		subject = fmt.Sprintf("Erinnerung: Ihr Termin morgen um %s", email.Time)
	}

	return c.send(ctx, sendEmailBody{
		From:    c.from,
		To:      []string{email.To},
		Subject: subject,
		HTML:    reminderHTML(email),
	})
}

// SendCancellation отправляет кандидату уведомление об отмене
func (c *Client) SendCancellation(ctx context.Context, email CancellationEmail) error {
	return c.send(ctx, sendEmailBody{
		From:    c.from,
		To:      []string{email.To},
		Subject: fmt.Sprintf("Termin abgesagt: %s", email.Date),
		HTML:    cancellationHTML(email, c.appBaseURL+"/booking"),
	})
}

// SendCVBackup отправляет оператору резервную копию резюме вложением
func (c *Client) SendCVBackup(ctx context.Context, email CVBackupEmail) error {
	if c.operatorEmail == "" {
		c.log.Warn("resend: operator email not configured, skipping CV backup")
		return nil
	}

	return c.send(ctx, sendEmailBody{
		From:    c.from,
		To:      []string{c.operatorEmail},
		Subject: fmt.Sprintf("Neuer Lebenslauf: %s - %s", email.CandidateName, email.Position),
		HTML:    cvBackupHTML(email),
		Attachments: []emailAttachment{
			{
				Filename: email.FileName,
				Content:  base64.StdEncoding.EncodeToString(email.Content),
			},
		},
	})
}

func (c *Client) send(ctx context.Context, body sendEmailBody) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		var resendErr resendErrorResponse
		if err := json.Unmarshal(raw, &resendErr); err == nil && resendErr.Message != "" {
			return fmt.Errorf("%w: send - status %d, name=%s: %s",
				ErrInvalidResponse, resp.StatusCode, resendErr.Name, resendErr.Message)
		}

		return fmt.Errorf("%w: send - unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("resend: sent email %s to %v", result.ID, body.To)
	return nil
}
