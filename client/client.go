// Package client is a Go client for the mailroom API. It carries the
// bearer token and the organization header on tenant-scoped calls, and
// layers the organization session context and cached mail item list on
// top of the raw endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsNotFound reports whether the error is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Organization mirrors the server's organization payload.
type Organization struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	DisplayName        string    `json:"display_name"`
	PlanType           string    `json:"plan_type"`
	SubscriptionStatus string    `json:"subscription_status"`
	MaxUsers           int       `json:"max_users"`
	MaxPackagesMonthly int       `json:"max_packages_monthly"`
}

// Membership pairs an organization with the user's role in it.
type Membership struct {
	Organization Organization `json:"organization"`
	Role         string       `json:"role"`
}

// MailItem mirrors the server's mail item payload.
type MailItem struct {
	ID                uuid.UUID  `json:"id"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	TrackingNumber    *string    `json:"tracking_number,omitempty"`
	Sender            *string    `json:"sender,omitempty"`
	Description       *string    `json:"description,omitempty"`
	RecipientID       *uuid.UUID `json:"recipient_id,omitempty"`
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`
	ArrivedAt         time.Time  `json:"arrived_at"`
	NotifiedAt        *time.Time `json:"notified_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
}

// MailItemList is a page of mail items.
type MailItemList struct {
	Items    []MailItem `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// CreateMailItemRequest is the intake form for a new mail item.
type CreateMailItemRequest struct {
	Type              string     `json:"type"`
	RecipientID       *uuid.UUID `json:"recipient_id,omitempty"`
	StorageLocationID *uuid.UUID `json:"storage_location_id,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
	Sender            string     `json:"sender,omitempty"`
	Description       string     `json:"description,omitempty"`
}

// Client talks to the mailroom API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues a request and decodes the response into out when it is non-nil.
// orgID scopes the request to an organization; uuid.Nil omits the header.
func (c *Client) do(ctx context.Context, method, path string, orgID uuid.UUID, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if orgID != uuid.Nil {
		req.Header.Set("X-Organization-Id", orgID.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort decode of the error envelope; the status code alone
		// is still a usable error.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ListOrganizations fetches the authenticated user's memberships.
func (c *Client) ListOrganizations(ctx context.Context) ([]Membership, error) {
	var memberships []Membership
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations", uuid.Nil, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetOrganization fetches a single organization, used to refresh billing state.
func (c *Client) GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations/"+id.String(), uuid.Nil, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListMailItems fetches a page of the organization's mail items.
func (c *Client) ListMailItems(ctx context.Context, orgID uuid.UUID, page, pageSize int) (*MailItemList, error) {
	path := "/api/v1/mail-items?page=" + strconv.Itoa(page) + "&page_size=" + strconv.Itoa(pageSize)
	var list MailItemList
	if err := c.do(ctx, http.MethodGet, path, orgID, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateMailItem logs a new mail item at intake.
func (c *Client) CreateMailItem(ctx context.Context, orgID uuid.UUID, req *CreateMailItemRequest) (*MailItem, error) {
	var item MailItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/mail-items", orgID, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// NotifyMailItem marks a mail item as notified.
func (c *Client) NotifyMailItem(ctx context.Context, orgID, id uuid.UUID) (*MailItem, error) {
	var item MailItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/mail-items/"+id.String()+"/notify", orgID, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeliverMailItem marks a mail item as delivered.
func (c *Client) DeliverMailItem(ctx context.Context, orgID, id uuid.UUID) (*MailItem, error) {
	var item MailItem
	if err := c.do(ctx, http.MethodPost, "/api/v1/mail-items/"+id.String()+"/deliver", orgID, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMailItem removes a mail item.
func (c *Client) DeleteMailItem(ctx context.Context, orgID, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/mail-items/"+id.String(), orgID, nil, nil)
}
