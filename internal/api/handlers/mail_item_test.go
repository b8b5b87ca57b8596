package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/imaging"
	"mailroom-backend/internal/mocks"
	"mailroom-backend/internal/service"
	"mailroom-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MailItemHandlerTestSuite defines the test suite for MailItemHandler
type MailItemHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMailItemServiceInterface
	handler     *MailItemHandler
	httpSuite   *testutils.HTTPTestSuite
	orgID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MailItemHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMailItemServiceInterface(suite.ctrl)
	suite.handler = NewMailItemHandler(suite.mockService, imaging.DefaultOptions)
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	// Stand-in for the tenant middleware: the real chain resolves the
	// X-Organization-Id header and membership before these handlers run.
	v1 := suite.httpSuite.Router.Group("/api/v1", func(c *gin.Context) {
		c.Set("organization_id", suite.orgID)
	})
	items := v1.Group("/mail-items")
	{
		items.POST("", suite.handler.CreateMailItem)
		items.GET("", suite.handler.ListMailItems)
		items.GET("/:id", suite.handler.GetMailItem)
		items.PUT("/:id", suite.handler.UpdateMailItem)
		items.POST("/:id/notify", suite.handler.NotifyMailItem)
		items.POST("/:id/deliver", suite.handler.DeliverMailItem)
		items.POST("/:id/photo", suite.handler.UploadMailItemPhoto)
		items.DELETE("/:id", suite.handler.DeleteMailItem)
	}
}

// TearDownTest cleans up after each test
func (suite *MailItemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MailItemHandlerTestSuite) itemResponse(status string) *service.MailItemResponse {
	return &service.MailItemResponse{
		ID:        uuid.New(),
		Type:      "package",
		Status:    status,
		ArrivedAt: time.Now(),
	}
}

// TestCreateMailItem tests logging a mail item
func (suite *MailItemHandlerTestSuite) TestCreateMailItem() {
	requestBody := map[string]interface{}{
		"type":            "package",
		"tracking_number": "1Z999AA10123456784",
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(suite.itemResponse("pending"), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/mail-items", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.MailItemResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "pending", response.Status)
}

// TestCreateMailItemUsageLimit tests the 402 mapping at the plan limit
func (suite *MailItemHandlerTestSuite) TestCreateMailItemUsageLimit() {
	requestBody := map[string]interface{}{"type": "package"}

	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewUsageLimitError("packages per month", 100)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/mail-items", requestBody)

	assert.Equal(suite.T(), http.StatusPaymentRequired, recorder.Code)
}

// TestCreateMailItemRecipientNotFound tests the 404 mapping on a bad reference
func (suite *MailItemHandlerTestSuite) TestCreateMailItemRecipientNotFound() {
	requestBody := map[string]interface{}{
		"type":         "package",
		"recipient_id": uuid.New().String(),
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrRecipientNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/mail-items", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListMailItemsInvalidStatusFilter tests filter validation
func (suite *MailItemHandlerTestSuite) TestListMailItemsInvalidStatusFilter() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/mail-items?status=lost", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid status filter")
}

// TestListMailItems tests listing with a valid filter
func (suite *MailItemHandlerTestSuite) TestListMailItems() {
	suite.mockService.EXPECT().
		List(suite.orgID, gomock.Any(), 1, 50).
		Return(&service.MailItemListResponse{
			Items:    []service.MailItemResponse{*suite.itemResponse("pending")},
			Total:    1,
			Page:     1,
			PageSize: 50,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/mail-items?status=pending", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.MailItemListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Items, 1)
}

// TestNotifyMailItem tests the notify transition
func (suite *MailItemHandlerTestSuite) TestNotifyMailItem() {
	itemID := uuid.New()

	suite.mockService.EXPECT().
		Notify(suite.orgID, itemID).
		Return(suite.itemResponse("notified"), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/mail-items/%s/notify", itemID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestNotifyDeliveredItemConflict tests the 409 mapping for a backward move
func (suite *MailItemHandlerTestSuite) TestNotifyDeliveredItemConflict() {
	itemID := uuid.New()

	suite.mockService.EXPECT().
		Notify(suite.orgID, itemID).
		Return(nil, apperrors.NewInvalidTransitionError("delivered", "notified")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/mail-items/%s/notify", itemID), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestDeliverMailItemNotFound tests the 404 mapping on transitions
func (suite *MailItemHandlerTestSuite) TestDeliverMailItemNotFound() {
	itemID := uuid.New()

	suite.mockService.EXPECT().
		Deliver(suite.orgID, itemID).
		Return(nil, apperrors.ErrMailItemNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/mail-items/%s/deliver", itemID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestTransitionInvalidID tests UUID validation on transition routes
func (suite *MailItemHandlerTestSuite) TestTransitionInvalidID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/mail-items/not-a-uuid/notify", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid mail item ID")
}

// TestDeleteMailItem tests deletion
func (suite *MailItemHandlerTestSuite) TestDeleteMailItem() {
	itemID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.orgID, itemID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/mail-items/%s", itemID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestUploadMailItemPhotoUnsupportedType tests the 415 mapping for non-image uploads
func (suite *MailItemHandlerTestSuite) TestUploadMailItemPhotoUnsupportedType() {
	itemID := uuid.New()

	recorder := suite.httpSuite.MakeMultipartRequest(suite.T(), "POST",
		fmt.Sprintf("/api/v1/mail-items/%s/photo", itemID), "photo", "notes.txt", []byte("not an image"))

	assert.Equal(suite.T(), http.StatusUnsupportedMediaType, recorder.Code)
}

// TestUploadMailItemPhotoMissingFile tests the missing form file case
func (suite *MailItemHandlerTestSuite) TestUploadMailItemPhotoMissingFile() {
	itemID := uuid.New()

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/mail-items/%s/photo", itemID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "photo file is required")
}

// TestMailItemHandlerTestSuite runs the test suite
func TestMailItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MailItemHandlerTestSuite))
}
