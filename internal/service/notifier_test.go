package service_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database/models"
	"mailroom-backend/internal/mocks"
	"mailroom-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// pickupEvent mirrors the webhook wire format so the tests assert the
// payload contract, not just round-trip behavior.
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

// DispatchServiceTestSuite defines the test suite for DispatchService
type DispatchServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockIntegrationRepo *mocks.MockIntegrationRepositoryInterface
	mockRecipientRepo   *mocks.MockRecipientRepositoryInterface
	service             *service.DispatchService
	orgID               uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DispatchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIntegrationRepo = mocks.NewMockIntegrationRepositoryInterface(suite.ctrl)
	suite.mockRecipientRepo = mocks.NewMockRecipientRepositoryInterface(suite.ctrl)
	suite.service = service.NewDispatchService(suite.mockIntegrationRepo, suite.mockRecipientRepo, &config.Config{
		WebhookTimeoutSec:  5,
		WebhookMaxRetries:  2,
		DispatchWorkers:    2,
		DispatchQueueDepth: 8,
	})
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *DispatchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DispatchServiceTestSuite) notifiedItem() *models.MailItem {
	now := time.Now()
	tracking := "1Z999AA10123456784"
	return &models.MailItem{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		Type:           models.MailItemTypePackage,
		Status:         models.MailItemStatusNotified,
		TrackingNumber: &tracking,
		ArrivedAt:      now.Add(-time.Hour),
		NotifiedAt:     &now,
	}
}

func webhookIntegration(url, secret string) models.Integration {
	config, _ := json.Marshal(models.WebhookConfig{URL: url, Secret: secret})
	return models.Integration{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Type:      models.IntegrationTypeWebhook,
		Name:      "Hooks",
		Config:    config,
		IsActive:  true,
	}
}

// TestWebhookDispatch tests that the event is POSTed with an HMAC signature
func (suite *DispatchServiceTestSuite) TestWebhookDispatch() {
	received := make(chan pickupEvent, 1)
	var signature atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		signature.Store(r.Header.Get("X-Mailroom-Signature"))
		var event pickupEvent
		_ = json.Unmarshal(body, &event)
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	item := suite.notifiedItem()
	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		Return([]models.Integration{webhookIntegration(server.URL, "hook-secret")}, nil).
		Times(1)

	suite.service.Start()
	suite.service.NotifyPickup(suite.orgID, item)

	select {
	case event := <-received:
		assert.Equal(suite.T(), "mail_item.notified", event.Event)
		assert.Equal(suite.T(), item.ID, event.MailItemID)
		assert.Equal(suite.T(), suite.orgID, event.OrganizationID)
	case <-time.After(5 * time.Second):
		suite.T().Fatal("webhook was never delivered")
	}
	suite.service.Shutdown()

	// Signature must be the HMAC-SHA256 of the exact body under the shared secret.
	body, _ := json.Marshal(pickupEvent{
		Event:          "mail_item.notified",
		OrganizationID: suite.orgID,
		MailItemID:     item.ID,
		Type:           "package",
		TrackingNumber: item.TrackingNumber,
		NotifiedAt:     item.NotifiedAt,
	})
	mac := hmac.New(sha256.New, []byte("hook-secret"))
	mac.Write(body)
	assert.Equal(suite.T(), hex.EncodeToString(mac.Sum(nil)), signature.Load())
}

// TestWebhookRetriesServerErrors tests retry on 5xx followed by success
func (suite *DispatchServiceTestSuite) TestWebhookRetriesServerErrors() {
	var attempts atomic.Int32
	done := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		close(done)
	}))
	defer server.Close()

	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		Return([]models.Integration{webhookIntegration(server.URL, "")}, nil).
		Times(1)

	suite.service.Start()
	suite.service.NotifyPickup(suite.orgID, suite.notifiedItem())

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		suite.T().Fatal("webhook retry never succeeded")
	}
	suite.service.Shutdown()

	assert.GreaterOrEqual(suite.T(), attempts.Load(), int32(2))
}

// TestWebhookClientErrorNotRetried tests that 4xx responses are terminal
func (suite *DispatchServiceTestSuite) TestWebhookClientErrorNotRetried() {
	var attempts atomic.Int32
	first := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			close(first)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		Return([]models.Integration{webhookIntegration(server.URL, "")}, nil).
		Times(1)

	suite.service.Start()
	suite.service.NotifyPickup(suite.orgID, suite.notifiedItem())

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		suite.T().Fatal("webhook was never attempted")
	}
	// Give a would-be retry time to land before stopping the pool.
	time.Sleep(200 * time.Millisecond)
	suite.service.Shutdown()

	assert.Equal(suite.T(), int32(1), attempts.Load())
}

// TestQueueFullDropsJob tests that a full queue drops instead of blocking
func (suite *DispatchServiceTestSuite) TestQueueFullDropsJob() {
	// Workers never started, so the buffered queue fills and overflow drops.
	for i := 0; i < 20; i++ {
		suite.service.NotifyPickup(suite.orgID, suite.notifiedItem())
	}
	assert.Equal(suite.T(), 8, suite.service.QueuedJobs())
}

// TestShutdownDeliversQueuedJobs tests that Shutdown drains the queue before
// stopping the workers
func (suite *DispatchServiceTestSuite) TestShutdownDeliversQueuedJobs() {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		Return([]models.Integration{webhookIntegration(server.URL, "")}, nil).
		Times(5)

	// Queue everything before the workers exist, then stop immediately:
	// Shutdown must not return until the backlog has been dispatched.
	for i := 0; i < 5; i++ {
		suite.service.NotifyPickup(suite.orgID, suite.notifiedItem())
	}
	suite.service.Start()
	suite.service.Shutdown()

	assert.Equal(suite.T(), int32(5), attempts.Load())
	assert.Zero(suite.T(), suite.service.QueuedJobs())
}

// TestSMSDispatch tests the SMS gateway channel with recipient lookup
func (suite *DispatchServiceTestSuite) TestSMSDispatch() {
	received := make(chan map[string]string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "Bearer sms-key", r.Header.Get("Authorization"))
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	smsConfig, _ := json.Marshal(models.SMSConfig{GatewayURL: server.URL, APIKey: "sms-key", Sender: "mailroom"})
	integration := models.Integration{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Type:      models.IntegrationTypeSMS,
		Name:      "SMS",
		Config:    smsConfig,
		IsActive:  true,
	}

	recipientID := uuid.New()
	phone := "+1-555-0123"
	item := suite.notifiedItem()
	item.RecipientID = &recipientID

	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		Return([]models.Integration{integration}, nil).
		Times(1)
	suite.mockRecipientRepo.EXPECT().
		GetByID(suite.orgID, recipientID).
		Return(&models.Recipient{
			BaseModel: models.BaseModel{ID: recipientID},
			FirstName: "Robin",
			LastName:  "Tenant",
			Phone:     &phone,
		}, nil).
		Times(1)

	suite.service.Start()
	suite.service.NotifyPickup(suite.orgID, item)

	select {
	case payload := <-received:
		assert.Equal(suite.T(), phone, payload["to"])
		assert.Equal(suite.T(), "mailroom", payload["from"])
	case <-time.After(5 * time.Second):
		suite.T().Fatal("sms was never delivered")
	}
	suite.service.Shutdown()
}

// TestAPIChannelIgnored tests that pull-style integrations get no push
func (suite *DispatchServiceTestSuite) TestAPIChannelIgnored() {
	apiIntegration := models.Integration{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Type:      models.IntegrationTypeAPI,
		Name:      "API",
		IsActive:  true,
	}

	loaded := make(chan struct{})
	suite.mockIntegrationRepo.EXPECT().
		GetActiveByOrganizationID(suite.orgID).
		DoAndReturn(func(uuid.UUID) ([]models.Integration, error) {
			close(loaded)
			return []models.Integration{apiIntegration}, nil
		}).
		Times(1)

	suite.service.Start()
	suite.service.NotifyPickup(suite.orgID, suite.notifiedItem())

	select {
	case <-loaded:
	case <-time.After(5 * time.Second):
		suite.T().Fatal("dispatch never ran")
	}
	suite.service.Shutdown()
}

// TestDispatchServiceTestSuite runs the test suite
func TestDispatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchServiceTestSuite))
}
