package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flyease/internal/store"
)

// Step is a stage of the linear booking flow. Every step requires the data
// of the previous one; a request arriving out of order is rejected and the
// client restarts from the catalog.
type Step string

const (
	StepQuoted            Step = "quoted"
	StepCustomerInfo      Step = "customer_info_collected"
	StepConfirmationReady Step = "confirmation_ready"
)

// CustomerInfo is the richer traveler composition collected mid-flow.
type CustomerInfo struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	SeniorCount int    `json:"senior_count"`
	JuniorCount int    `json:"junior_count"`
}

// PaymentDetails carries the chosen method only; card data never enters
// this system.
type PaymentDetails struct {
	Method string `json:"method"`
}

// FlowState is the transient in-progress booking, owned by one customer
// session. It is superseded by a fresh quote and destroyed on commit or
// TTL expiry (implicit abandonment).
type FlowState struct {
	Step      Step           `json:"step"`
	Quote     Quote          `json:"quote"`
	Customer  CustomerInfo   `json:"customer"`
	Payment   PaymentDetails `json:"payment"`
	StartedAt time.Time      `json:"started_at"`
}

// FlowStore keeps flow state in the fast-expiry store, keyed by user id,
// so abandoned flows age out on their own.
type FlowStore struct {
	kv  store.KV
	ttl time.Duration
}

func NewFlowStore(kv store.KV, ttl time.Duration) *FlowStore {
	return &FlowStore{kv: kv, ttl: ttl}
}

func (f *FlowStore) Get(ctx context.Context, userID int64) (*FlowState, error) {
	raw, err := f.kv.Get(ctx, flowKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoFlowInProgress
		}
		return nil, err
	}

	var state FlowState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (f *FlowStore) Save(ctx context.Context, userID int64, state *FlowState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return f.kv.Set(ctx, flowKey(userID), string(raw), f.ttl)
}

func (f *FlowStore) Clear(ctx context.Context, userID int64) error {
	return f.kv.Delete(ctx, flowKey(userID))
}

func flowKey(userID int64) string {
	return fmt.Sprintf("booking:flow:%d", userID)
}
