package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flyease/internal/domain"
	"flyease/internal/mailer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allowedTransitions is the full status graph staff may walk. Completed and
// cancelled are terminal.
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingConfirmed, domain.BookingCancelled},
	domain.BookingConfirmed: {domain.BookingCompleted, domain.BookingCancelled},
}

// Service is the staff/admin surface: booking oversight and user
// moderation.
type Service struct {
	bookings BookingRepositoryInterface
	users    UserRepositoryInterface
	packages PackageRepositoryInterface
	mail     mailer.Mailer
	logger   *zap.Logger
}

func NewService(
	bookings BookingRepositoryInterface,
	users UserRepositoryInterface,
	packages PackageRepositoryInterface,
	mail mailer.Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		packages: packages,
		mail:     mail,
		logger:   logger,
	}
}

func (s *Service) ListBookings(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	if status != "" {
		if _, err := parseStatus(status); err != nil {
			return nil, err
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.List(ctx, status, limit, offset)
}

// UpdateBookingStatus moves a booking along the status graph. Reaching
// completed triggers the review invite; the invite is advisory and its
// failure never fails the transition.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID int64, rawStatus string) (*domain.Booking, error) {
	target, err := parseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	bk, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !transitionAllowed(bk.Status, target) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, bk.Status, target)
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, target); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	bk.Status = target

	if target == domain.BookingCompleted {
		s.sendReviewInvite(bk)
	}

	return bk, nil
}

// sendReviewInvite emails the customer asking for a review. It runs in its
// own goroutine with a detached context so a slow relay cannot stall the
// staff request.
func (s *Service) sendReviewInvite(bk *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		user, err := s.users.GetByID(ctx, bk.UserID)
		if err != nil {
			s.logger.Warn("review invite skipped, could not load user",
				zap.Int64("booking_id", bk.ID),
				zap.Int64("user_id", bk.UserID),
				zap.Error(err),
			)
			return
		}

		packageName := "your trip"
		if pkg, err := s.packages.GetByID(ctx, bk.PackageID); err == nil {
			packageName = pkg.Name
		}

		subject := "How was " + packageName + "?"
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your booking %s is complete. We would love to hear how %s went — leave a review on the package page.</p>",
			user.Name, bk.Reference, packageName,
		)

		if err := s.mail.Send(ctx, user.Email, subject, body); err != nil {
			s.logger.Warn("review invite email failed",
				zap.Int64("booking_id", bk.ID),
				zap.String("to", user.Email),
				zap.Error(err),
			)
		}
	}()
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) SetUserBanned(ctx context.Context, userID int64, banned bool, reason string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.SetBanned(ctx, userID, banned, reason)
}

func parseStatus(raw string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(raw) {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCompleted, domain.BookingCancelled:
		return domain.BookingStatus(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
