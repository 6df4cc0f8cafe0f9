package meta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/store"
)

// Credentials identifies one WhatsApp Business Account for Graph API calls
type Credentials struct {
	WABAID      string
	AccessToken string
}

// TemplateAPI defines the Meta message-template surface consumed by the
// lifecycle manager and the poller
//
//go:generate mockgen -source=client.go -destination=../mocks/meta.go -package=mocks -mock_names=TemplateAPI=MockTemplateAPI
type TemplateAPI interface {
	// SubmitTemplate registers a template with Meta and returns its external id
	SubmitTemplate(ctx context.Context, tenantID string, req SubmitRequest) (string, error)
	// GetTemplateStatus fetches the current status of one template by external id
	GetTemplateStatus(ctx context.Context, tenantID, externalID string) (*TemplateStatusResponse, error)
	// FetchAllTemplates lists every template Meta knows for the tenant's account
	FetchAllTemplates(ctx context.Context, tenantID string) ([]TemplateStatusResponse, error)
	// DeleteTemplate removes a template from Meta by name
	DeleteTemplate(ctx context.Context, tenantID, name string) error
}

// Config holds Graph API client configuration. Default credentials are the
// fallback for tenants without a connected channel.
type Config struct {
	GraphURL           string
	APIVersion         string
	DefaultWABAID      string
	DefaultAccessToken string
}

type client struct {
	config Config
	http   adapter.HTTPClient
	store  store.Store
}

// NewClient creates a Graph API template client. Tenant credentials are
// resolved from the channels table, falling back to the configured defaults.
func NewClient(cfg Config, httpClient adapter.HTTPClient, st store.Store) TemplateAPI {
	return &client{
		config: cfg,
		http:   httpClient,
		store:  st,
	}
}

// resolveCredentials looks up the tenant's channel credentials
func (c *client) resolveCredentials(ctx context.Context, tenantID string) (*Credentials, error) {
	channel, err := c.store.GetChannelByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel credentials: %w", err)
	}
	if channel != nil {
		return &Credentials{WABAID: channel.WABAID, AccessToken: channel.AccessToken}, nil
	}
	if c.config.DefaultWABAID != "" && c.config.DefaultAccessToken != "" {
		return &Credentials{WABAID: c.config.DefaultWABAID, AccessToken: c.config.DefaultAccessToken}, nil
	}
	return nil, domain.ErrChannelNotFound
}

func (c *client) templatesURL(creds *Credentials) string {
	return fmt.Sprintf("%s/%s/%s/message_templates", c.config.GraphURL, c.config.APIVersion, creds.WABAID)
}

func (c *client) authHeaders(creds *Credentials) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + creds.AccessToken,
	}
}

// SubmitTemplate registers a template with Meta and returns its external id
func (c *client) SubmitTemplate(ctx context.Context, tenantID string, req SubmitRequest) (string, error) {
	creds, err := c.resolveCredentials(ctx, tenantID)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal submit request: %w", err)
	}

	respBody, err := c.http.Post(ctx, c.templatesURL(creds), c.authHeaders(creds), body)
	if err != nil {
		return "", fmt.Errorf("template submission failed: %w", decorateGraphError(err))
	}

	var resp SubmitResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("submit response carried no template id")
	}

	return resp.ID, nil
}

// GetTemplateStatus fetches the current status of one template by external id
func (c *client) GetTemplateStatus(ctx context.Context, tenantID, externalID string) (*TemplateStatusResponse, error) {
	creds, err := c.resolveCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/%s/%s?fields=id,name,language,status,category,quality_score,rejected_reason",
		c.config.GraphURL, c.config.APIVersion, url.PathEscape(externalID))

	respBody, err := c.http.Get(ctx, reqURL, c.authHeaders(creds))
	if err != nil {
		return nil, fmt.Errorf("template status fetch failed: %w", decorateGraphError(err))
	}

	var resp TemplateStatusResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}

	return &resp, nil
}

// FetchAllTemplates lists every template Meta knows for the tenant's account
func (c *client) FetchAllTemplates(ctx context.Context, tenantID string) ([]TemplateStatusResponse, error) {
	creds, err := c.resolveCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var all []TemplateStatusResponse
	next := c.templatesURL(creds) + "?limit=100"
	for next != "" {
		respBody, err := c.http.Get(ctx, next, c.authHeaders(creds))
		if err != nil {
			return nil, fmt.Errorf("template list fetch failed: %w", decorateGraphError(err))
		}

		var page templateListResponse
		if err := json.Unmarshal(respBody, &page); err != nil {
			return nil, fmt.Errorf("failed to decode template list: %w", err)
		}

		all = append(all, page.Data...)
		next = ""
		if page.Paging != nil {
			next = page.Paging.Next
		}
	}

	return all, nil
}

// DeleteTemplate removes a template from Meta by name
func (c *client) DeleteTemplate(ctx context.Context, tenantID, name string) error {
	creds, err := c.resolveCredentials(ctx, tenantID)
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s?name=%s", c.templatesURL(creds), url.QueryEscape(name))
	if _, err := c.http.Delete(ctx, reqURL, c.authHeaders(creds)); err != nil {
		return fmt.Errorf("template deletion failed: %w", decorateGraphError(err))
	}
	return nil
}

// decorateGraphError extracts the Graph API error message from a status error
// body when one is present
func decorateGraphError(err error) error {
	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var envelope apiError
	if jsonErr := json.Unmarshal([]byte(statusErr.Body), &envelope); jsonErr != nil || envelope.Error.Message == "" {
		return err
	}
	return fmt.Errorf("graph api error %d (%s): %s", envelope.Error.Code, envelope.Error.Type, envelope.Error.Message)
}
