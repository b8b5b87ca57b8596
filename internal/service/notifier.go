package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"sync"
	"time"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database/models"
	"mailroom-backend/internal/logger"
	"mailroom-backend/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// pickupEvent is the payload delivered to integration channels when a mail
// item transitions to notified.
type pickupEvent struct {
	Event          string     `json:"event"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	MailItemID     uuid.UUID  `json:"mail_item_id"`
	Type           string     `json:"type"`
	TrackingNumber *string    `json:"tracking_number,omitempty"`
	Sender         *string    `json:"sender,omitempty"`
	RecipientID    *uuid.UUID `json:"recipient_id,omitempty"`
	NotifiedAt     *time.Time `json:"notified_at,omitempty"`
}

type dispatchJob struct {
	orgID uuid.UUID
	item  models.MailItem
}

// DispatchService fans pickup notifications out to the organization's active
// integrations from a small worker pool. Enqueueing never blocks the
// lifecycle transition; when the queue is full the job is dropped with a
// warning, since the next background refresh corrects any missed client view
// and channel delivery is best-effort by contract.
type DispatchService struct {
	integrationRepo repository.IntegrationRepositoryInterface
	recipientRepo   repository.RecipientRepositoryInterface
	cfg             *config.Config
	log             *logger.Logger
	httpClient      *http.Client

	jobs   chan dispatchJob
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewDispatchService creates a new notification dispatch service
func NewDispatchService(integrationRepo repository.IntegrationRepositoryInterface, recipientRepo repository.RecipientRepositoryInterface, cfg *config.Config) *DispatchService {
	depth := cfg.DispatchQueueDepth
	if depth <= 0 {
		depth = 256
	}
	return &DispatchService{
		integrationRepo: integrationRepo,
		recipientRepo:   recipientRepo,
		cfg:             cfg,
		log:             logger.New().WithField("component", "dispatch"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.WebhookTimeoutSec) * time.Second,
		},
		jobs: make(chan dispatchJob, depth),
	}
}

// Start launches the worker pool
func (s *DispatchService) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	workers := s.cfg.DispatchWorkers
	if workers <= 0 {
		workers = 4
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx)
	}
}

// Shutdown closes the queue and stops the workers once every queued job has
// been dispatched. NotifyPickup must not be called after Shutdown.
func (s *DispatchService) Shutdown() {
	close(s.jobs)
	s.wg.Wait()
	if s.cancel != nil {
		s.cancel()
	}
}

// NotifyPickup enqueues a pickup notification for asynchronous dispatch
func (s *DispatchService) NotifyPickup(orgID uuid.UUID, item *models.MailItem) {
	select {
	case s.jobs <- dispatchJob{orgID: orgID, item: *item}:
	default:
		s.log.WithField("mail_item_id", item.ID.String()).Warn("dispatch queue full, dropping notification")
	}
}

// worker drains the queue until it is closed. The context only bounds
// in-flight deliveries and their retries, so jobs already queued at shutdown
// still go out.
func (s *DispatchService) worker(ctx context.Context) {
	defer s.wg.Done()
	for job := range s.jobs {
		s.dispatch(ctx, job)
	}
}

func (s *DispatchService) dispatch(ctx context.Context, job dispatchJob) {
	integrations, err := s.integrationRepo.GetActiveByOrganizationID(job.orgID)
	if err != nil {
		s.log.WithField("organization_id", job.orgID.String()).Errorf("failed to load integrations: %v", err)
		return
	}

	event := pickupEvent{
		Event:          "mail_item.notified",
		OrganizationID: job.orgID,
		MailItemID:     job.item.ID,
		Type:           string(job.item.Type),
		TrackingNumber: job.item.TrackingNumber,
		Sender:         job.item.Sender,
		RecipientID:    job.item.RecipientID,
		NotifiedAt:     job.item.NotifiedAt,
	}

	for _, integration := range integrations {
		var err error
		switch integration.Type {
		case models.IntegrationTypeWebhook:
			err = s.sendWebhook(ctx, &integration, event)
		case models.IntegrationTypeEmail:
			err = s.sendEmail(&integration, &job.item)
		case models.IntegrationTypeSMS:
			err = s.sendSMS(ctx, &integration, &job.item)
		case models.IntegrationTypeAPI:
			// Pull-style channel, nothing to push.
			continue
		}
		if err != nil {
			s.log.WithFields(map[string]interface{}{
				"integration_id": integration.ID.String(),
				"channel":        string(integration.Type),
				"mail_item_id":   job.item.ID.String(),
			}).Errorf("notification dispatch failed: %v", err)
		}
	}
}

// sendWebhook POSTs the event JSON with an HMAC signature header, retrying
// with exponential backoff on transport and 5xx failures.
func (s *DispatchService) sendWebhook(ctx context.Context, integration *models.Integration, event pickupEvent) error {
	var cfg models.WebhookConfig
	if err := json.Unmarshal(integration.Config, &cfg); err != nil {
		return fmt.Errorf("invalid webhook config: %w", err)
	}
	if cfg.URL == "" {
		return fmt.Errorf("webhook config has no url")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if cfg.Secret != "" {
			mac := hmac.New(sha256.New, []byte(cfg.Secret))
			mac.Write(body)
			req.Header.Set("X-Mailroom-Signature", hex.EncodeToString(mac.Sum(nil)))
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("webhook endpoint returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			// Client errors will not improve with retries.
			return backoff.Permanent(fmt.Errorf("webhook endpoint returned %d", resp.StatusCode))
		}
		return nil
	}

	maxRetries := uint64(s.cfg.WebhookMaxRetries)
	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx))
}

func (s *DispatchService) sendEmail(integration *models.Integration, item *models.MailItem) error {
	var cfg models.EmailConfig
	if err := json.Unmarshal(integration.Config, &cfg); err != nil {
		return fmt.Errorf("invalid email config: %w", err)
	}
	if cfg.SMTPHost == "" || cfg.From == "" {
		return fmt.Errorf("email config missing smtp host or from address")
	}

	recipientEmail := s.recipientEmail(item)
	if recipientEmail == "" {
		// No addressee to notify; not an error.
		return nil
	}

	subject := "A package is waiting for you"
	if item.Type == models.MailItemTypeLetter {
		subject = "Mail is waiting for you"
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\nAn item logged at the mailroom is ready for pickup.\r\n", cfg.From, recipientEmail, subject)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, cfg.From, []string{recipientEmail}, []byte(msg))
}

func (s *DispatchService) sendSMS(ctx context.Context, integration *models.Integration, item *models.MailItem) error {
	var cfg models.SMSConfig
	if err := json.Unmarshal(integration.Config, &cfg); err != nil {
		return fmt.Errorf("invalid sms config: %w", err)
	}
	if cfg.GatewayURL == "" {
		return fmt.Errorf("sms config has no gateway url")
	}

	phone := s.recipientPhone(item)
	if phone == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":      phone,
		"from":    cfg.Sender,
		"message": "An item logged at the mailroom is ready for pickup.",
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}

func (s *DispatchService) recipientEmail(item *models.MailItem) string {
	r := s.loadRecipient(item)
	if r == nil || r.Email == nil {
		return ""
	}
	return *r.Email
}

func (s *DispatchService) recipientPhone(item *models.MailItem) string {
	r := s.loadRecipient(item)
	if r == nil || r.Phone == nil {
		return ""
	}
	return *r.Phone
}

func (s *DispatchService) loadRecipient(item *models.MailItem) *models.Recipient {
	if item.Recipient != nil {
		return item.Recipient
	}
	if item.RecipientID == nil {
		return nil
	}
	r, err := s.recipientRepo.GetByID(item.OrganizationID, *item.RecipientID)
	if err != nil {
		return nil
	}
	return r
}
