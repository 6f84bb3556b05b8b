package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

const (
	notionBaseURL = "https://api.notion.com/v1"
	notionVersion = "2022-06-28"
)

// Имена свойств базы бронирований (немецкая схема заказчика)
const (
	propName            = "Name"
	propEmail           = "E-Mail"
	propPhone           = "Handynummer"
	propPosition        = "Position"
	propNoticePeriod    = "Kündigungsfrist"
	propRegions         = "Gesuchte Region"
	propSalary          = "Gehaltsvorstellung"
	propEmploymentTypes = "Beschäftigungsverhältnis"
	propWorkTime        = "Arbeitszeit"
	propWorkLocation    = "Home-Office"
	propContractTypes   = "Vertragsform"
	propLinkedIn        = "LinkedIn URL"
	propMeeting         = "Termin"
	propMeetingLink     = "Meeting Link"
	propStatus          = "Status"
	propEventID         = "Event ID"
	propCV              = "CV"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент базы бронирований Notion
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	databaseID string
	log        Logger
}

// NewClient создает новый экземпляр клиента Notion
func NewClient(apiKey, databaseID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    notionBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		databaseID: databaseID,
		log:        log,
	}
}

// CreateRecord создает запись бронирования и возвращает ее идентификатор
func (c *Client) CreateRecord(ctx context.Context, req CreateRecordRequest) (string, error) {
	props := map[string]propertyValue{
		propName: {
			Title: []richTextItem{{Text: richTextContent{Content: req.Candidate.FullName}}},
		},
		propEmail:        {Email: &req.Candidate.Email},
		propPosition:     {RichText: richText(req.Candidate.Position)},
		propNoticePeriod: {RichText: richText(req.Candidate.AvailableFrom)},
		propRegions:      {RichText: richText(strings.Join(req.Candidate.Regions, ", "))},
		propSalary:       {RichText: richText(req.Candidate.Salary)},
		propEmploymentTypes: {
			MultiSelect: selectOptions(req.Candidate.EmploymentTypes),
		},
		propContractTypes: {
			MultiSelect: selectOptions(req.Candidate.ContractTypes),
		},
		propMeeting: {
			Date: &dateValue{
				Start: req.StartDateTime.Format(time.RFC3339),
				End:   req.StartDateTime.Add(time.Duration(req.DurationMinutes) * time.Minute).Format(time.RFC3339),
			},
		},
		propStatus:  {Select: &selectOption{Name: string(domain.StatusScheduled)}},
		propEventID: {RichText: richText(req.EventID)},
	}

	if req.Candidate.Phone != "" {
		props[propPhone] = propertyValue{PhoneNumber: &req.Candidate.Phone}
	}
	if req.Candidate.WorkTime != "" {
		props[propWorkTime] = propertyValue{Select: &selectOption{Name: req.Candidate.WorkTime}}
	}
	if req.Candidate.WorkLocation != "" {
		props[propWorkLocation] = propertyValue{Select: &selectOption{Name: req.Candidate.WorkLocation}}
	}
	if req.Candidate.LinkedIn != "" {
		props[propLinkedIn] = propertyValue{URL: &req.Candidate.LinkedIn}
	}
	if req.MeetingLink != "" {
		props[propMeetingLink] = propertyValue{URL: &req.MeetingLink}
	}

	body := createPageBody{
		Parent:     pageParent{DatabaseID: c.databaseID},
		Properties: props,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/pages", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.upstreamError("CreateRecord", resp)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if page.ID == "" {
		return "", fmt.Errorf("%w: created page has no id", ErrInvalidResponse)
	}

	return page.ID, nil
}

// GetRecord получает запись бронирования по идентификатору
func (c *Client) GetRecord(ctx context.Context, recordID string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/pages/%s", c.baseURL, url.PathEscape(recordID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrRecordNotFound
	default:
		return nil, c.upstreamError("GetRecord", resp)
	}

	var page pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return narrowBooking(page), nil
}

// UpdateStatus меняет статус записи бронирования
func (c *Client) UpdateStatus(ctx context.Context, recordID string, status domain.BookingStatus) error {
	body := updatePageBody{
		Properties: map[string]propertyValue{
			propStatus: {Select: &selectOption{Name: string(status)}},
		},
	}
	return c.updatePage(ctx, "UpdateStatus", recordID, body)
}

// UpdateMeeting переносит дату и время встречи в записи бронирования
func (c *Client) UpdateMeeting(ctx context.Context, recordID string, start time.Time, durationMinutes int) error {
	body := updatePageBody{
		Properties: map[string]propertyValue{
			propMeeting: {
				Date: &dateValue{
					Start: start.Format(time.RFC3339),
					End:   start.Add(time.Duration(durationMinutes) * time.Minute).Format(time.RFC3339),
				},
			},
		},
	}
	return c.updatePage(ctx, "UpdateMeeting", recordID, body)
}

// QueryScheduled возвращает все записи со статусом "Geplant"
func (c *Client) QueryScheduled(ctx context.Context) ([]domain.Booking, error) {
	body := queryBody{
		Filter: propertyFilter{
			Property: propStatus,
			Select:   selectFilter{Equals: string(domain.StatusScheduled)},
		},
		Sorts: []querySort{{Property: propMeeting, Direction: "ascending"}},
	}

	endpoint := fmt.Sprintf("%s/databases/%s/query", c.baseURL, url.PathEscape(c.databaseID))

	resp, err := c.doJSON(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.upstreamError("QueryScheduled", resp)
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(result.Results))
	for _, page := range result.Results {
		bookings = append(bookings, *narrowBooking(page))
	}

	return bookings, nil
}

// AttachCV загружает файл резюме и прикрепляет его к записи.
// Трехшаговый File Upload API: создание, отправка содержимого, привязка.
func (c *Client) AttachCV(ctx context.Context, recordID, fileName, contentType string, content []byte) error {
	uploadID, err := c.createFileUpload(ctx)
	if err != nil {
		return err
	}

	if err := c.sendFileUpload(ctx, uploadID, fileName, contentType, content); err != nil {
		return err
	}

	body := updatePageBody{
		Properties: map[string]propertyValue{
			propCV: {
				Files: []fileRef{
					{
						Name:       fileName,
						Type:       "file_upload",
						FileUpload: fileUploadRef{ID: uploadID},
					},
				},
			},
		},
	}
	return c.updatePage(ctx, "AttachCV", recordID, body)
}

func (c *Client) createFileUpload(ctx context.Context) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/file_uploads", createFileUploadBody{Mode: "single_part"})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.upstreamError("createFileUpload", resp)
	}

	var upload fileUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if upload.ID == "" {
		return "", fmt.Errorf("%w: file upload has no id", ErrInvalidResponse)
	}

	return upload.ID, nil
}

func (c *Client) sendFileUpload(ctx context.Context, uploadID, fileName, contentType string, content []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName),
	}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("%w: failed to build multipart body: %v", ErrInternal, err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("%w: failed to build multipart body: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: failed to build multipart body: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/file_uploads/%s/send", c.baseURL, url.PathEscape(uploadID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.upstreamError("sendFileUpload", resp)
	}

	return nil
}

func (c *Client) updatePage(ctx context.Context, op, recordID string, body updatePageBody) error {
	endpoint := fmt.Sprintf("%s/pages/%s", c.baseURL, url.PathEscape(recordID))

	resp, err := c.doJSON(ctx, http.MethodPatch, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrRecordNotFound
	default:
		return c.upstreamError(op, resp)
	}
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
}

func (c *Client) upstreamError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var notionErr notionErrorResponse
	if err := json.Unmarshal(raw, &notionErr); err == nil && notionErr.Code != "" {
		return fmt.Errorf("%w: %s - status %d, code=%s: %s",
			ErrInvalidResponse, op, resp.StatusCode, notionErr.Code, notionErr.Message)
	}

	return fmt.Errorf("%w: %s - unexpected status code %d: %s",
		ErrInvalidResponse, op, resp.StatusCode, string(raw))
}

// narrowBooking сужает страницу Notion к доменной модели.
// Отсутствующие свойства дают нулевые значения, ошибок не бывает.
func narrowBooking(page pageResponse) *domain.Booking {
	booking := &domain.Booking{ID: page.ID, DurationMins: 30}

	fullName := plainText(page.Properties[propName].Title)
	parts := strings.SplitN(fullName, " ", 2)
	booking.Candidate.FirstName = parts[0]
	if len(parts) > 1 {
		booking.Candidate.LastName = parts[1]
	}

	if v := page.Properties[propEmail].Email; v != nil {
		booking.Candidate.Email = *v
	}
	if v := page.Properties[propPhone].PhoneNumber; v != nil {
		booking.Candidate.Phone = *v
	}
	booking.Candidate.Position = plainText(page.Properties[propPosition].RichText)
	booking.Candidate.AvailableFrom = plainText(page.Properties[propNoticePeriod].RichText)
	booking.Candidate.Salary = plainText(page.Properties[propSalary].RichText)

	if regions := plainText(page.Properties[propRegions].RichText); regions != "" {
		booking.Candidate.Regions = strings.Split(regions, ", ")
	}
	booking.Candidate.EmploymentTypes = optionNames(page.Properties[propEmploymentTypes].MultiSelect)
	booking.Candidate.ContractTypes = optionNames(page.Properties[propContractTypes].MultiSelect)

	if v := page.Properties[propWorkTime].Select; v != nil {
		booking.Candidate.WorkTime = v.Name
	}
	if v := page.Properties[propWorkLocation].Select; v != nil {
		booking.Candidate.WorkLocation = v.Name
	}
	if v := page.Properties[propLinkedIn].URL; v != nil {
		booking.Candidate.LinkedIn = *v
	}
	if v := page.Properties[propMeetingLink].URL; v != nil {
		booking.MeetingLink = *v
	}
	if v := page.Properties[propStatus].Select; v != nil {
		booking.Status = domain.BookingStatus(v.Name)
	}
	booking.EventID = plainText(page.Properties[propEventID].RichText)

	if d := page.Properties[propMeeting].Date; d != nil {
		if start, err := time.Parse(time.RFC3339, d.Start); err == nil {
			booking.StartDateTime = start
			if end, err := time.Parse(time.RFC3339, d.End); err == nil && end.After(start) {
				booking.DurationMins = int(end.Sub(start) / time.Minute)
			}
		}
	}

	return booking
}

func plainText(items []richTextItem) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.Text.Content)
	}
	return sb.String()
}

func richText(content string) []richTextItem {
	return []richTextItem{{Text: richTextContent{Content: content}}}
}

func selectOptions(names []string) []selectOption {
	opts := make([]selectOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, selectOption{Name: name})
	}
	return opts
}

func optionNames(opts []selectOption) []string {
	names := make([]string, 0, len(opts))
	for _, opt := range opts {
		names = append(names, opt.Name)
	}
	return names
}
