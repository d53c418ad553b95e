package wizard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"heritagepalace/internal/domain"
	"heritagepalace/internal/modules/pricing"
	"heritagepalace/internal/pkg/bookingid"
)

const currency = "INR"

// Budget for session saves that must outlive a cancelled request.
const detachedSaveTimeout = 5 * time.Second

type Service struct {
	store    SessionStore
	rooms    RoomGetter
	bookings BookingRecorder
	profiles ProfileUpserter
	ids      *bookingid.Allocator

	paymentDelay time.Duration
	now          func() time.Time

	// in-flight confirms per session, so closing the modal can cancel
	// pending work instead of leaving an orphaned write.
	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

func NewService(
	store SessionStore,
	rooms RoomGetter,
	bookings BookingRecorder,
	profiles ProfileUpserter,
	paymentDelay time.Duration,
) *Service {
	return &Service{
		store:        store,
		rooms:        rooms,
		bookings:     bookings,
		profiles:     profiles,
		ids:          bookingid.New(bookings.Exists),
		paymentDelay: paymentDelay,
		now:          time.Now,
		inflight:     make(map[string]context.CancelFunc),
	}
}

// View is a session together with its room context and the quote
// recomputed from the current inputs.
type View struct {
	Session *Session      `json:"session"`
	Room    *domain.Room  `json:"room"`
	Quote   pricing.Quote `json:"quote"`
}

// Open starts a fresh session for a room. There are no resume
// semantics: reopening the wizard always lands on step 1 with a clear
// error, payment method and booking id.
func (s *Service) Open(ctx context.Context, roomID int64) (*View, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	sess := newSession(roomID, s.now())
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.view(sess, room), nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.GetByID(ctx, sess.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return s.view(sess, room), nil
}

// Party mutation operations accepted by UpdateParty.
const (
	OpAdultsInc   = "adults_inc"
	OpAdultsDec   = "adults_dec"
	OpChildrenInc = "children_inc"
	OpChildrenDec = "children_dec"
	OpRoomsInc    = "rooms_inc"
	OpRoomsDec    = "rooms_dec"
)

func (s *Service) UpdateParty(ctx context.Context, sessionID, op string) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step == StepTicket {
		return nil, ErrWrongStep
	}

	switch op {
	case OpAdultsInc:
		sess.Party.AddAdult()
	case OpAdultsDec:
		sess.Party.RemoveAdult()
	case OpChildrenInc:
		sess.Party.AddChild()
	case OpChildrenDec:
		sess.Party.RemoveChild()
	case OpRoomsInc:
		sess.Party.AddRoom()
	case OpRoomsDec:
		sess.Party.RemoveRoom()
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrValidation, op)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.viewWithRoom(ctx, sess)
}

type DetailsInput struct {
	CheckIn  string
	CheckOut string
	Name     string
	Phone    string
}

// SubmitDetails records the stay and guest identity and advances to
// Payment. Any empty required field keeps the session on Details with a
// local error; nothing is partially saved across the step boundary.
func (s *Service) SubmitDetails(ctx context.Context, sessionID string, in DetailsInput) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepDetails {
		return nil, ErrWrongStep
	}

	sess.CheckIn = strings.TrimSpace(in.CheckIn)
	sess.CheckOut = strings.TrimSpace(in.CheckOut)
	sess.Name = strings.TrimSpace(in.Name)
	sess.Phone = strings.TrimSpace(in.Phone)

	if sess.CheckIn == "" || sess.CheckOut == "" || sess.Name == "" || sess.Phone == "" {
		sess.LastError = "Please fill in all details"
		if err := s.store.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return nil, ErrValidation
	}

	sess.LastError = ""
	sess.Step = StepPayment
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.viewWithRoom(ctx, sess)
}

func (s *Service) SelectPayment(ctx context.Context, sessionID string, method domain.PaymentMethod) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPayment {
		return nil, ErrWrongStep
	}

	switch method {
	case domain.PaymentCard, domain.PaymentUPI, domain.PaymentWallet:
		sess.PaymentMethod = method
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.viewWithRoom(ctx, sess)
}

// Back returns from Payment to Details without losing any entered
// fields.
func (s *Service) Back(ctx context.Context, sessionID string) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPayment {
		return nil, ErrWrongStep
	}

	sess.Step = StepDetails
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.viewWithRoom(ctx, sess)
}

// Confirm runs the Payment -> Ticket transition: simulated gateway
// latency, then the profile upsert followed by the booking create. The
// two writes are sequential, not atomic; when the create fails after
// the upsert succeeded the session stays on Payment with a retryable
// error and the profile counters are ahead by one until the user
// retries.
func (s *Service) Confirm(ctx context.Context, sessionID string, userID int64, userEmail string) (*View, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPayment {
		return nil, ErrWrongStep
	}
	if sess.Submitting {
		return nil, ErrSubmitting
	}

	room, err := s.rooms.GetByID(ctx, sess.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	cctx, cancel, err := s.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer s.untrack(sessionID)

	sess.Submitting = true
	sess.LastError = ""
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if err := s.sleep(cctx); err != nil {
		// Close deletes the session outright; a dropped request leaves
		// it behind with the flag set, so clear it or every retry is
		// refused until the TTL expires.
		s.clearSubmitting(sess)
		return nil, ErrCancelled
	}

	booking, err := s.writeBooking(cctx, sess, room, userID, userEmail)
	if err != nil {
		if cctx.Err() != nil {
			s.clearSubmitting(sess)
			return nil, ErrCancelled
		}
		sess.Submitting = false
		sess.LastError = "Payment failed. Please try again."
		if saveErr := s.saveDetached(sess); saveErr != nil {
			log.Printf("wizard: save session after failed payment: %v", saveErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	sess.Submitting = false
	sess.Step = StepTicket
	sess.BookingID = booking.ID
	// The booking exists at this point, so the step transition must land
	// even when the request context has already been cancelled.
	if err := s.saveDetached(sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.view(sess, room), nil
}

// Close discards the session and cancels a confirm still in flight.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	if cancel, ok := s.inflight[sessionID]; ok {
		cancel()
	}
	s.mu.Unlock()

	return s.store.Delete(ctx, sessionID)
}

func (s *Service) writeBooking(ctx context.Context, sess *Session, room *domain.Room, userID int64, userEmail string) (*domain.Booking, error) {
	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, err
	}

	quote := s.quote(sess, room)
	now := s.now()

	// Profile first, then the record. Counter updates are additive so a
	// retry after a failed create only re-runs the create path with a
	// fresh id.
	if err := s.profiles.Upsert(ctx, userID, userEmail, quote.TotalAmount, now); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	booking := &domain.Booking{
		ID:            id,
		UserID:        userID,
		UserEmail:     userEmail,
		GuestName:     sess.Name,
		GuestPhone:    sess.Phone,
		CheckIn:       sess.CheckIn,
		CheckOut:      sess.CheckOut,
		Nights:        quote.Nights,
		Adults:        sess.Party.Adults,
		Children:      sess.Party.Children,
		RoomsCount:    sess.Party.Rooms,
		RoomID:        room.ID,
		RoomName:      room.Name,
		RoomImage:     room.Image,
		PricePerNight: quote.PricePerNight,
		PaymentMethod: sess.PaymentMethod,
		BaseAmount:    quote.BaseAmount,
		TaxAmount:     quote.TaxAmount,
		TotalAmount:   quote.TotalAmount,
		Currency:      currency,
		PaymentStatus: domain.PaymentPaid,
		Status:        domain.BookingConfirmed,
		CreatedAt:     now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *Service) sleep(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// acquire registers the confirm as the session's single in-flight
// submission. Registration and the busy check happen under one lock, so
// two simultaneous confirms cannot both pass the Submitting guard on a
// stale read of the session.
func (s *Service) acquire(ctx context.Context, sessionID string) (context.Context, context.CancelFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return nil, nil, ErrSubmitting
	}
	cctx, cancel := context.WithCancel(ctx)
	s.inflight[sessionID] = cancel
	return cctx, cancel, nil
}

func (s *Service) untrack(sessionID string) {
	s.mu.Lock()
	delete(s.inflight, sessionID)
	s.mu.Unlock()
}

// saveDetached persists the session on a context that survives the
// request, so a client disconnect cannot lose the state transition.
func (s *Service) saveDetached(sess *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), detachedSaveTimeout)
	defer cancel()
	return s.store.Save(ctx, sess)
}

// clearSubmitting releases the submission flag after a cancelled
// confirm. A session Close already deleted stays deleted.
func (s *Service) clearSubmitting(sess *Session) {
	ctx, cancel := context.WithTimeout(context.Background(), detachedSaveTimeout)
	defer cancel()

	if _, err := s.store.Get(ctx, sess.ID); err != nil {
		return
	}
	sess.Submitting = false
	if err := s.store.Save(ctx, sess); err != nil {
		log.Printf("wizard: clear submitting flag: %v", err)
	}
}

func (s *Service) quote(sess *Session, room *domain.Room) pricing.Quote {
	return pricing.Compute(pricing.ParsePrice(room.Price), sess.Party.Rooms, sess.Nights())
}

func (s *Service) view(sess *Session, room *domain.Room) *View {
	return &View{Session: sess, Room: room, Quote: s.quote(sess, room)}
}

func (s *Service) viewWithRoom(ctx context.Context, sess *Session) (*View, error) {
	room, err := s.rooms.GetByID(ctx, sess.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return s.view(sess, room), nil
}
