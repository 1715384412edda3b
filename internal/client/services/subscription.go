package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Faizan-Cheema/popstream/internal/client/api"
	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

// Subscription plans accepted by the checkout endpoint.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// SubscriptionService reports the current plan and starts checkout.
type SubscriptionService interface {
	// Status returns the current subscription type of the signed-in user.
	Status(ctx context.Context) (string, error)

	// Checkout creates a payment session for the given plan and returns
	// the redirect URL to open in a browser.
	Checkout(ctx context.Context, plan string) (string, error)
}

type subscriptionService struct {
	gw       api.Caller
	sessions *session.Store
	log      logging.Logger
}

func NewSubscriptionService(gw api.Caller, sessions *session.Store, log logging.Logger) SubscriptionService {
	return &subscriptionService{gw: gw, sessions: sessions, log: log.With("component", "subscription")}
}

func (s *subscriptionService) Status(ctx context.Context) (string, error) {
	var resp struct {
		SubscriptionType string `json:"subscription_type"`
	}
	if err := s.gw.Call(ctx, http.MethodGet, "/subscription_type/", nil, &resp); err != nil {
		return "", forceSignOut(ctx, s.sessions, s.log, err)
	}
	return resp.SubscriptionType, nil
}

func (s *subscriptionService) Checkout(ctx context.Context, plan string) (string, error) {
	if plan != PlanMonthly && plan != PlanYearly {
		return "", &ValidationError{Message: fmt.Sprintf("unknown plan %q (expected %s or %s)", plan, PlanMonthly, PlanYearly)}
	}

	var resp struct {
		Checkout string `json:"checkout"`
	}
	err := s.gw.Call(ctx, http.MethodGet, "/checkout/?plan="+url.QueryEscape(plan), nil, &resp)
	if err != nil {
		return "", forceSignOut(ctx, s.sessions, s.log, err)
	}
	if resp.Checkout == "" {
		return "", errors.New("failed to create checkout session")
	}

	s.log.Info(ctx, "checkout session created", "plan", plan)
	return resp.Checkout, nil
}
