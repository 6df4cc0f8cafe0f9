package rest

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/store"
)

const MAX_PAGE_SIZE = 100

// ListTemplatesQueryParams holds query parameters for GET /templates
type ListTemplatesQueryParams struct {
	Status     string `form:"status"`
	ActiveOnly bool   `form:"active_only,default=true"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// HistoryQueryParams holds query parameters for GET /templates/:id/history
type HistoryQueryParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// StatusChangesQueryParams holds query parameters for GET /status-changes
type StatusChangesQueryParams struct {
	ToStatus string `form:"to_status"`
	Since    string `form:"since"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// StatusSummaryQueryParams holds query parameters for GET /status-changes/summary
type StatusSummaryQueryParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// ParseListTemplatesQuery parses query parameters for GET /templates
func ParseListTemplatesQuery(c *gin.Context) (*store.TemplateFilter, error) {
	var params ListTemplatesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	filter := &store.TemplateFilter{
		ActiveOnly: params.ActiveOnly,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}

	if params.Status != "" {
		status := domain.TemplateStatus(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", params.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// ParseHistoryQuery parses query parameters for GET /templates/:id/history
func ParseHistoryQuery(c *gin.Context) (*HistoryQueryParams, error) {
	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseStatusChangesQuery parses query parameters for GET /status-changes
func ParseStatusChangesQuery(c *gin.Context) (*store.HistoryFilter, error) {
	var params StatusChangesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	filter := &store.HistoryFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	if params.ToStatus != "" {
		status := domain.TemplateStatus(params.ToStatus)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", params.ToStatus)
		}
		filter.ToStatus = &status
	}

	if params.Since != "" {
		since, err := time.Parse(time.RFC3339, params.Since)
		if err != nil {
			return nil, fmt.Errorf("since must be RFC3339: %w", err)
		}
		filter.Since = &since
	}

	return filter, nil
}

// ParseStatusSummaryQuery parses query parameters for GET /status-changes/summary.
// The range defaults to the trailing 24 hours.
func ParseStatusSummaryQuery(c *gin.Context, now time.Time) (from, to time.Time, err error) {
	var params StatusSummaryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, time.Time{}, err
	}

	to = now
	if params.To != "" {
		to, err = time.Parse(time.RFC3339, params.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to must be RFC3339: %w", err)
		}
	}

	from = to.Add(-24 * time.Hour)
	if params.From != "" {
		from, err = time.Parse(time.RFC3339, params.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from must be RFC3339: %w", err)
		}
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("from must precede to")
	}

	return from, to, nil
}
