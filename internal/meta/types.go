package meta

import "github.com/flowdesk/wacrm/internal/domain"

// SubmitRequest is the payload for registering a template with Meta
type SubmitRequest struct {
	Name       string             `json:"name"`
	Language   string             `json:"language"`
	Category   string             `json:"category"`
	Components []domain.Component `json:"components"`
}

// SubmitResponse is Meta's response to a template creation call
type SubmitResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// TemplateStatusResponse is Meta's representation of one template record
type TemplateStatusResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Language       string        `json:"language"`
	Status         string        `json:"status"`
	Category       string        `json:"category"`
	QualityScore   *QualityScore `json:"quality_score,omitempty"`
	RejectedReason string        `json:"rejected_reason,omitempty"`
}

// QualityScore is Meta's template quality rating
type QualityScore struct {
	Score string `json:"score"`
}

// templateListResponse wraps the paginated template list endpoint
type templateListResponse struct {
	Data   []TemplateStatusResponse `json:"data"`
	Paging *paging                  `json:"paging,omitempty"`
}

type paging struct {
	Next string `json:"next,omitempty"`
}

// apiError is the Graph API error envelope
type apiError struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}
