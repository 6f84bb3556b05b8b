package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

const (
	graphBaseURL = "https://graph.microsoft.com/v1.0"
	tokenURLFmt  = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	graphScope   = "https://graph.microsoft.com/.default"

	// Graph отдает dateTime без зоны; зону запрашиваем заголовком Prefer
	graphTimeLayout = "2006-01-02T15:04:05.9999999"
	// Гражданское время в теле запросов (зона передается отдельным полем)
	civilTimeLayout = "2006-01-02T15:04:05"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент календаря Microsoft Graph (client credentials flow).
// Токен получает и обновляет oauth2/clientcredentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userID     string
	conv       *civiltime.Converter
	log        Logger
}

// NewClient создает новый экземпляр клиента Graph
func NewClient(tenantID, clientID, clientSecret, userID string, timeout time.Duration, conv *civiltime.Converter, log Logger) *Client {
	cc := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf(tokenURLFmt, tenantID),
		Scopes:       []string{graphScope},
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    graphBaseURL,
		httpClient: httpClient,
		userID:     userID,
		conv:       conv,
		log:        log,
	}
}

// ListEvents получает события календаря в диапазоне [from, to]
func (c *Client) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	q := url.Values{}
	q.Set("$select", "subject,start,end")
	q.Set("$filter", fmt.Sprintf("start/dateTime ge '%s' and end/dateTime le '%s'",
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)))
	q.Set("$orderby", "start/dateTime")
	q.Set("$top", "250")

	endpoint := fmt.Sprintf("%s/users/%s/calendar/events?%s", c.baseURL, url.PathEscape(c.userID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	// Просим Graph отдавать start/end в UTC, чтобы парсить одним layout
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.upstreamError("ListEvents", resp)
	}

	var list eventListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	events := make([]Event, 0, len(list.Value))
	for _, item := range list.Value {
		start, err := parseGraphTime(item.Start.DateTime)
		if err != nil {
			c.log.Warn("msgraph: skipping event %s with unparsable start %q", item.ID, item.Start.DateTime)
			continue
		}
		end, err := parseGraphTime(item.End.DateTime)
		if err != nil {
			c.log.Warn("msgraph: skipping event %s with unparsable end %q", item.ID, item.End.DateTime)
			continue
		}
		events = append(events, Event{
			ID:      item.ID,
			Subject: item.Subject,
			Start:   start,
			End:     end,
		})
	}

	return events, nil
}

// CreateEvent создает событие с Teams-встречей и приглашением кандидата
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResult, error) {
	start, err := c.conv.At(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid slot: %v", ErrInternal, err)
	}
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	body := createEventBody{
		Subject: fmt.Sprintf("Kandidaten-Gespräch: %s", req.AttendeeName),
		Body: graphItemBody{
			ContentType: "HTML",
			Content: fmt.Sprintf("<p>Beratungsgespräch mit %s</p><p>Email: %s</p>",
				req.AttendeeName, req.AttendeeEmail),
		},
		Start: graphDateTime{
			DateTime: start.Format(civilTimeLayout),
			TimeZone: c.conv.Location().String(),
		},
		End: graphDateTime{
			DateTime: end.Format(civilTimeLayout),
			TimeZone: c.conv.Location().String(),
		},
		Attendees: []graphAttendee{
			{
				EmailAddress: graphEmailAddress{Address: req.AttendeeEmail, Name: req.AttendeeName},
				Type:         "required",
			},
		},
		IsOnlineMeeting:       true,
		OnlineMeetingProvider: "teamsForBusiness",
	}

	endpoint := fmt.Sprintf("%s/users/%s/calendar/events", c.baseURL, url.PathEscape(c.userID))

	resp, err := c.doJSON(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.upstreamError("CreateEvent", resp)
	}

	var created graphEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: created event has no id", ErrInvalidResponse)
	}

	result := &EventResult{EventID: created.ID}
	if created.OnlineMeeting != nil {
		result.MeetingLink = created.OnlineMeeting.JoinURL
	}

	return result, nil
}

// UpdateEventTime переносит событие на новые дату и время
func (c *Client) UpdateEventTime(ctx context.Context, eventID, date string, startTime types.TimeString, durationMinutes int) error {
	start, err := c.conv.At(date, startTime)
	if err != nil {
		return fmt.Errorf("%w: invalid slot: %v", ErrInternal, err)
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	body := updateEventBody{
		Start: graphDateTime{
			DateTime: start.Format(civilTimeLayout),
			TimeZone: c.conv.Location().String(),
		},
		End: graphDateTime{
			DateTime: end.Format(civilTimeLayout),
			TimeZone: c.conv.Location().String(),
		},
	}

	endpoint := fmt.Sprintf("%s/users/%s/calendar/events/%s",
		c.baseURL, url.PathEscape(c.userID), url.PathEscape(eventID))

	resp, err := c.doJSON(ctx, http.MethodPatch, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		return c.upstreamError("UpdateEventTime", resp)
	}
}

// DeleteEvent удаляет событие календаря
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	endpoint := fmt.Sprintf("%s/users/%s/calendar/events/%s",
		c.baseURL, url.PathEscape(c.userID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		return c.upstreamError("DeleteEvent", resp)
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
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

func (c *Client) upstreamError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var graphErr graphErrorResponse
	if err := json.Unmarshal(raw, &graphErr); err == nil && graphErr.Error.Code != "" {
		return fmt.Errorf("%w: %s - status %d, code=%s: %s",
			ErrInvalidResponse, op, resp.StatusCode, graphErr.Error.Code, graphErr.Error.Message)
	}

	return fmt.Errorf("%w: %s - unexpected status code %d: %s",
		ErrInvalidResponse, op, resp.StatusCode, string(raw))
}

func parseGraphTime(s string) (time.Time, error) {
	return time.ParseInLocation(graphTimeLayout, s, time.UTC)
}
