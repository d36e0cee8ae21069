package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flyease/internal/domain"
	"flyease/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service drives the linear booking flow: quote, customer info, payment
// details, confirmation, commit. All state before commit is transient.
type Service struct {
	bookings BookingRepositoryInterface
	packages PackageRepositoryInterface
	flows    *FlowStore
	gateway  CheckoutGateway
	rules    PricingRules
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	bookings BookingRepositoryInterface,
	packages PackageRepositoryInterface,
	flows *FlowStore,
	gateway CheckoutGateway,
	rules PricingRules,
	currency string,
	logger *zap.Logger,
) *Service {
	return &Service{
		bookings: bookings,
		packages: packages,
		flows:    flows,
		gateway:  gateway,
		rules:    rules,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// QuotePrice computes a price breakdown and starts (or restarts) the
// caller's booking flow. Requoting always supersedes any in-progress flow.
func (s *Service) QuotePrice(ctx context.Context, userID int64, req QuoteRequest) (*Quote, error) {
	if req.TravelerCount < 1 {
		return nil, ErrTravelerCountInvalid
	}

	now := s.now()
	if !req.TravelDate.After(now) {
		return nil, ErrTravelDateInPast
	}

	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	if pkg.AvailableSlots < req.TravelerCount {
		return nil, ErrInsufficientCapacity
	}

	quote := ComputeQuote(pkg, req.TravelerCount, req.TravelDate, now, s.rules)

	state := &FlowState{
		Step:      StepQuoted,
		Quote:     quote,
		StartedAt: now,
	}
	if err := s.flows.Save(ctx, userID, state); err != nil {
		return nil, err
	}

	return &quote, nil
}

// SubmitCustomerInfo records traveler details for the flow started by a
// quote. Senior/junior counts may not exceed the quoted traveler count.
func (s *Service) SubmitCustomerInfo(ctx context.Context, userID int64, req CustomerInfoRequest) (*FlowState, error) {
	state, err := s.flows.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.SeniorCount+req.JuniorCount > state.Quote.TravelerCount {
		return nil, ErrTravelerMixInvalid
	}

	state.Customer = CustomerInfo{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		SeniorCount: req.SeniorCount,
		JuniorCount: req.JuniorCount,
	}
	state.Quote.SeniorCount = req.SeniorCount
	state.Quote.JuniorCount = req.JuniorCount
	state.Step = StepCustomerInfo

	if err := s.flows.Save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SubmitPaymentDetails records the payment method and moves the flow to
// confirmation. Requires customer info to have been collected first.
func (s *Service) SubmitPaymentDetails(ctx context.Context, userID int64, req PaymentDetailsRequest) (*FlowState, error) {
	state, err := s.flows.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Step != StepCustomerInfo && state.Step != StepConfirmationReady {
		return nil, ErrFlowStepOutOfOrder
	}

	state.Payment = PaymentDetails{Method: req.Method}
	state.Step = StepConfirmationReady

	if err := s.flows.Save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// GetConfirmation returns the full pending booking for final review.
func (s *Service) GetConfirmation(ctx context.Context, userID int64) (*ConfirmationView, error) {
	state, err := s.flows.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Step != StepConfirmationReady {
		return nil, ErrFlowStepOutOfOrder
	}
	return &ConfirmationView{
		Quote:    state.Quote,
		Customer: state.Customer,
		Payment:  state.Payment,
	}, nil
}

// Commit finalizes the flow: the gateway is charged first, then the
// booking, its payment and the slot decrement are persisted in a single
// transaction. Capacity is re-checked inside that transaction, so a
// concurrent booking that drained the package aborts this one cleanly.
// Nothing is persisted when the gateway rejects the charge.
func (s *Service) Commit(ctx context.Context, userID int64) (*CommitResult, error) {
	state, err := s.flows.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Step != StepConfirmationReady {
		return nil, ErrFlowStepOutOfOrder
	}

	reference := newReference()

	sessionID, checkoutURL, err := s.gateway.CreateCheckoutSession(ctx, state.Quote.FinalAmount, s.currency, reference)
	if err != nil {
		s.logger.Warn("checkout session failed, aborting booking",
			zap.Int64("user_id", userID),
			zap.String("reference", reference),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}

	now := s.now()
	bk := &domain.Booking{
		Reference:     reference,
		UserID:        userID,
		PackageID:     state.Quote.PackageID,
		TravelDate:    state.Quote.TravelDate,
		TravelerCount: state.Quote.TravelerCount,
		SeniorCount:   state.Customer.SeniorCount,
		JuniorCount:   state.Customer.JuniorCount,
		BaseAmount:    state.Quote.BaseAmount,
		Discount:      state.Quote.Discount,
		FinalAmount:   state.Quote.FinalAmount,
		Status:        domain.BookingConfirmed,
		BookedAt:      now,
	}
	pay := &domain.Payment{
		Method:     state.Payment.Method,
		ProviderTx: sessionID,
		Amount:     state.Quote.FinalAmount,
		Currency:   s.currency,
		Status:     domain.PaymentCompleted,
		PaidAt:     now,
	}

	if err := s.bookings.CreateConfirmed(ctx, bk, pay); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientSlots):
			return nil, ErrInsufficientCapacity
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrPackageNotFound
		default:
			return nil, err
		}
	}

	if err := s.flows.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear committed booking flow",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	s.logger.Info("booking committed",
		zap.Int64("user_id", userID),
		zap.String("reference", bk.Reference),
		zap.Int64("booking_id", bk.ID),
	)

	view := toBookingView(bk)
	view.PackageName = state.Quote.PackageName
	return &CommitResult{Booking: view, CheckoutURL: checkoutURL}, nil
}

// MyBookings lists the caller's persisted bookings, newest first.
func (s *Service) MyBookings(ctx context.Context, userID int64, limit, offset int) ([]*BookingView, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	items, err := s.bookings.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]*BookingView, 0, len(items))
	for i := range items {
		views = append(views, toBookingView(&items[i]))
	}
	return views, nil
}

// GetMyBooking fetches one booking and enforces ownership.
func (s *Service) GetMyBooking(ctx context.Context, userID, bookingID int64) (*BookingView, error) {
	bk, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if bk.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return toBookingView(bk), nil
}

func toBookingView(b *domain.Booking) *BookingView {
	v := &BookingView{
		ID:            b.ID,
		Reference:     b.Reference,
		PackageID:     b.PackageID,
		Status:        string(b.Status),
		TravelerCount: b.TravelerCount,
		SeniorCount:   b.SeniorCount,
		JuniorCount:   b.JuniorCount,
		TravelDate:    b.TravelDate,
		BaseAmount:    b.BaseAmount.StringFixed(2),
		Discount:      b.Discount.StringFixed(2),
		FinalAmount:   b.FinalAmount.StringFixed(2),
		BookedAt:      b.BookedAt,
	}
	if b.Pkg != nil {
		v.PackageName = b.Pkg.Name
	}
	return v
}

func newReference() string {
	return "BK-" + uuid.NewString()[:8]
}
