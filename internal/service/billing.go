package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"mailroom-backend/internal/config"
	"mailroom-backend/internal/database/models"
	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/logger"
	"mailroom-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	portalsession "github.com/stripe/stripe-go/v82/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

// BillingService integrates with Stripe for subscription checkout, the
// customer portal and webhook-driven plan updates. Plan state on the
// organization is only ever written here and at organization creation.
type BillingService struct {
	cfg     *config.Config
	orgRepo repository.OrganizationRepositoryInterface
	log     *logger.Logger
}

// NewBillingService creates a new billing service and sets the Stripe API key
func NewBillingService(cfg *config.Config, orgRepo repository.OrganizationRepositoryInterface) *BillingService {
	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	}
	return &BillingService{
		cfg:     cfg,
		orgRepo: orgRepo,
		log:     logger.New().WithField("component", "billing"),
	}
}

// CheckoutSessionRequest selects the plan to subscribe to
type CheckoutSessionRequest struct {
	PlanType string `json:"plan_type" validate:"required"`
}

// CheckoutSessionResponse carries the provider redirect URL
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// PortalSessionResponse carries the provider portal URL
type PortalSessionResponse struct {
	URL string `json:"url"`
}

func (s *BillingService) priceForPlan(plan models.PlanType) string {
	switch plan {
	case models.PlanTypeStarter:
		return s.cfg.StripePriceStarter
	case models.PlanTypeProfessional:
		return s.cfg.StripePriceProfessional
	case models.PlanTypeEnterprise:
		return s.cfg.StripePriceEnterprise
	}
	return ""
}

func (s *BillingService) planForPrice(priceID string) models.PlanType {
	switch priceID {
	case s.cfg.StripePriceStarter:
		return models.PlanTypeStarter
	case s.cfg.StripePriceProfessional:
		return models.PlanTypeProfessional
	case s.cfg.StripePriceEnterprise:
		return models.PlanTypeEnterprise
	}
	return ""
}

func (s *BillingService) getOrganization(orgID uuid.UUID) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// ensureCustomer lazily creates the Stripe customer for an organization
func (s *BillingService) ensureCustomer(org *models.Organization) (string, error) {
	if org.BillingCustomerID != "" {
		return org.BillingCustomerID, nil
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Name: stripe.String(org.DisplayName),
		Metadata: map[string]string{
			"organization_id": org.ID.String(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create billing customer: %w", err)
	}

	org.BillingCustomerID = cust.ID
	if err := s.orgRepo.Update(org); err != nil {
		return "", fmt.Errorf("failed to store billing customer id: %w", err)
	}
	return cust.ID, nil
}

// CreateCheckoutSession creates a Stripe Checkout session for a plan upgrade
func (s *BillingService) CreateCheckoutSession(orgID uuid.UUID, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	if s.cfg.StripeSecretKey == "" {
		return nil, apperrors.ErrBillingNotConfigured
	}

	plan := models.PlanType(req.PlanType)
	if !plan.IsValid() || plan == models.PlanTypeTrial {
		return nil, apperrors.ErrInvalidPlanType
	}
	priceID := s.priceForPlan(plan)
	if priceID == "" {
		return nil, apperrors.ErrBillingNotConfigured
	}

	org, err := s.getOrganization(orgID)
	if err != nil {
		return nil, err
	}

	custID, err := s.ensureCustomer(org)
	if err != nil {
		return nil, err
	}

	sess, err := checkoutsession.New(&stripe.CheckoutSessionParams{
		Customer: stripe.String(custID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.BillingReturnURL + "?checkout=success"),
		CancelURL:  stripe.String(s.cfg.BillingReturnURL + "?checkout=canceled"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSessionResponse{URL: sess.URL}, nil
}

// CreatePortalSession creates a Stripe Billing Portal session
func (s *BillingService) CreatePortalSession(orgID uuid.UUID) (*PortalSessionResponse, error) {
	if s.cfg.StripeSecretKey == "" {
		return nil, apperrors.ErrBillingNotConfigured
	}

	org, err := s.getOrganization(orgID)
	if err != nil {
		return nil, err
	}

	custID, err := s.ensureCustomer(org)
	if err != nil {
		return nil, err
	}

	sess, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(custID),
		ReturnURL: stripe.String(s.cfg.BillingReturnURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &PortalSessionResponse{URL: sess.URL}, nil
}

// HandleWebhook verifies a Stripe webhook payload and applies the event
func (s *BillingService) HandleWebhook(payload []byte, signature string) error {
	if s.cfg.StripeWebhookSecret == "" {
		return apperrors.ErrBillingNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, signature, s.cfg.StripeWebhookSecret)
	if err != nil {
		return apperrors.NewAuthenticationError("invalid webhook signature")
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		if sess.Customer == nil || sess.Subscription == nil {
			return nil
		}
		return s.applyCheckoutCompleted(sess.Customer.ID, sess.Subscription.ID)

	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		priceID := ""
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			priceID = sub.Items.Data[0].Price.ID
		}
		customerID := ""
		if sub.Customer != nil {
			customerID = sub.Customer.ID
		}
		return s.ApplySubscriptionUpdate(customerID, sub.ID, string(sub.Status), priceID)

	default:
		s.log.WithField("event_type", string(event.Type)).Debug("ignoring billing event")
		return nil
	}
}

func (s *BillingService) applyCheckoutCompleted(customerID, subscriptionID string) error {
	org, err := s.orgRepo.GetByBillingCustomerID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("customer_id", customerID).Warn("checkout completed for unknown customer")
			return nil
		}
		return fmt.Errorf("failed to look up organization: %w", err)
	}

	org.BillingSubID = subscriptionID
	org.SubscriptionStatus = models.SubscriptionStatusActive
	if err := s.orgRepo.Update(org); err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	return nil
}

// ApplySubscriptionUpdate maps a provider subscription state onto the owning
// organization: plan from the price id, status from the subscription status,
// limits from the plan.
func (s *BillingService) ApplySubscriptionUpdate(customerID, subscriptionID, status, priceID string) error {
	if customerID == "" {
		return nil
	}

	org, err := s.orgRepo.GetByBillingCustomerID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("customer_id", customerID).Warn("subscription event for unknown customer")
			return nil
		}
		return fmt.Errorf("failed to look up organization: %w", err)
	}

	org.BillingSubID = subscriptionID
	org.SubscriptionStatus = mapSubscriptionStatus(status)

	if plan := s.planForPrice(priceID); plan != "" {
		org.PlanType = plan
		org.MaxUsers, org.MaxPackagesMonthly = models.PlanLimits(plan)
	}

	if err := s.orgRepo.Update(org); err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": org.ID.String(),
		"plan":            string(org.PlanType),
		"status":          string(org.SubscriptionStatus),
	}).Info("applied subscription update")
	return nil
}

func mapSubscriptionStatus(status string) models.SubscriptionStatus {
	switch status {
	case "trialing":
		return models.SubscriptionStatusTrialing
	case "active":
		return models.SubscriptionStatusActive
	case "past_due", "unpaid", "incomplete":
		return models.SubscriptionStatusPastDue
	default:
		return models.SubscriptionStatusCanceled
	}
}
