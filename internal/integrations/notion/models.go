package notion

import "time"

// CreateRecordRequest параметры создания записи бронирования
type CreateRecordRequest struct {
	Candidate struct {
		FullName        string
		Email           string
		Phone           string
		Position        string
		AvailableFrom   string
		Regions         []string
		Salary          string
		EmploymentTypes []string
		WorkTime        string
		WorkLocation    string
		ContractTypes   []string
		LinkedIn        string
	}
	StartDateTime   time.Time
	DurationMinutes int
	EventID         string
	MeetingLink     string
}

// ── wire-модели Notion API ──
// Явные типы на границе: поля сужаются при чтении, наличие не предполагается.

type richTextContent struct {
	Content string `json:"content"`
}

type richTextItem struct {
	Text richTextContent `json:"text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type fileUploadRef struct {
	ID string `json:"id"`
}

type fileRef struct {
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	FileUpload fileUploadRef `json:"file_upload"`
}

// propertyValue универсальное значение свойства страницы.
// При записи заполняется ровно одно поле, остальные опускаются.
type propertyValue struct {
	Title       []richTextItem `json:"title,omitempty"`
	RichText    []richTextItem `json:"rich_text,omitempty"`
	Email       *string        `json:"email,omitempty"`
	PhoneNumber *string        `json:"phone_number,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Select      *selectOption  `json:"select,omitempty"`
	MultiSelect []selectOption `json:"multi_select,omitempty"`
	Date        *dateValue     `json:"date,omitempty"`
	Files       []fileRef      `json:"files,omitempty"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type createPageBody struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]propertyValue `json:"properties"`
}

type updatePageBody struct {
	Properties map[string]propertyValue `json:"properties"`
}

type pageResponse struct {
	ID         string                   `json:"id"`
	Properties map[string]propertyValue `json:"properties"`
}

type selectFilter struct {
	Equals string `json:"equals"`
}

type propertyFilter struct {
	Property string       `json:"property"`
	Select   selectFilter `json:"select"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryBody struct {
	Filter propertyFilter `json:"filter"`
	Sorts  []querySort    `json:"sorts,omitempty"`
}

type queryResponse struct {
	Results []pageResponse `json:"results"`
}

type createFileUploadBody struct {
	Mode string `json:"mode"`
}

type fileUploadResponse struct {
	ID string `json:"id"`
}

type notionErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
