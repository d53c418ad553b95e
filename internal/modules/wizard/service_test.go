package wizard

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heritagepalace/internal/domain"
)

// In-memory SessionStore, value-copy semantics like the Redis one.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]Session)}
}

func (m *memStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := s
	return &cp, nil
}

func (m *memStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type MockRoomGetter struct {
	mock.Mock
}

func (m *MockRoomGetter) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRecorder) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Upsert(ctx context.Context, userID int64, email string, spend int, at time.Time) error {
	args := m.Called(ctx, userID, email, spend, at)
	return args.Error(0)
}

func superDeluxe() *domain.Room {
	return &domain.Room{
		ID:    2,
		Name:  "Super Deluxe",
		Price: "₹5,500",
		Image: "https://images.example.com/super-deluxe.jpg",
	}
}

func newTestService(store SessionStore, rooms RoomGetter, rec BookingRecorder, prof ProfileUpserter) *Service {
	return NewService(store, rooms, rec, prof, 0)
}

func openSession(t *testing.T, svc *Service) *Session {
	t.Helper()
	view, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)
	return view.Session
}

func toPayment(t *testing.T, svc *Service, id string) {
	t.Helper()
	_, err := svc.SubmitDetails(context.Background(), id, DetailsInput{
		CheckIn:  "2025-01-10",
		CheckOut: "2025-01-12",
		Name:     "Rahul Verma",
		Phone:    "+91 98765 43210",
	})
	require.NoError(t, err)
}

func TestOpen_StartsFreshAtDetails(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))

	view, err := svc.Open(context.Background(), 2)
	require.NoError(t, err)

	sess := view.Session
	assert.Equal(t, StepDetails, sess.Step)
	assert.Empty(t, sess.LastError)
	assert.Empty(t, sess.BookingID)
	assert.False(t, sess.Submitting)
	assert.Equal(t, domain.PaymentCard, sess.PaymentMethod)
	assert.Equal(t, 1, sess.Party.Adults)
	assert.Equal(t, 1, sess.Party.Rooms)

	// no dates yet: quoted as a single night
	assert.Equal(t, 1, view.Quote.Nights)
	assert.Equal(t, 5500, view.Quote.PricePerNight)
}

func TestOpen_UnknownRoom(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.New("record not found"))

	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))

	_, err := svc.Open(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSubmitDetails_MissingFieldsStayOnDetails(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	store := newMemStore()
	svc := newTestService(store, rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)

	_, err := svc.SubmitDetails(context.Background(), sess.ID, DetailsInput{
		CheckIn:  "2025-01-10",
		CheckOut: "2025-01-12",
		Name:     "Rahul Verma",
		// phone missing
	})
	assert.ErrorIs(t, err, ErrValidation)

	saved, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepDetails, saved.Step)
	assert.NotEmpty(t, saved.LastError)
}

func TestSubmitDetails_AdvancesToPayment(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)

	view, err := svc.SubmitDetails(context.Background(), sess.ID, DetailsInput{
		CheckIn:  "2025-01-10",
		CheckOut: "2025-01-12",
		Name:     "Rahul Verma",
		Phone:    "+91 98765 43210",
	})
	require.NoError(t, err)

	assert.Equal(t, StepPayment, view.Session.Step)
	assert.Empty(t, view.Session.LastError)
	assert.Equal(t, 2, view.Quote.Nights)
	assert.Equal(t, 11000, view.Quote.BaseAmount)
	assert.Equal(t, 1320, view.Quote.TaxAmount)
	assert.Equal(t, 12320, view.Quote.TotalAmount)
}

func TestBack_RetainsFields(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	view, err := svc.Back(context.Background(), sess.ID)
	require.NoError(t, err)

	assert.Equal(t, StepDetails, view.Session.Step)
	assert.Equal(t, "2025-01-10", view.Session.CheckIn)
	assert.Equal(t, "Rahul Verma", view.Session.Name)
}

func TestConfirm_WritesProfileThenBooking(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	var order []string

	rec := new(MockRecorder)
	rec.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	rec.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order = append(order, "create")
	}).Return(nil)

	prof := new(MockProfiles)
	prof.On("Upsert", mock.Anything, int64(7), "guest@example.com", 12320, mock.Anything).
		Run(func(args mock.Arguments) {
			order = append(order, "upsert")
		}).Return(nil)

	store := newMemStore()
	svc := newTestService(store, rooms, rec, prof)
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	view, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"upsert", "create"}, order)
	assert.Equal(t, StepTicket, view.Session.Step)
	assert.False(t, view.Session.Submitting)
	assert.Regexp(t, regexp.MustCompile(`^BK-[A-Z0-9]{6}$`), view.Session.BookingID)

	booking := rec.Calls[1].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, view.Session.BookingID, booking.ID)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.Equal(t, domain.PaymentPaid, booking.PaymentStatus)
	assert.Equal(t, "INR", booking.Currency)
	assert.Equal(t, 11000, booking.BaseAmount)
	assert.Equal(t, 1320, booking.TaxAmount)
	assert.Equal(t, 12320, booking.TotalAmount)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, "Super Deluxe", booking.RoomName)
}

func TestConfirm_CreateFailureStaysOnPayment(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	rec := new(MockRecorder)
	rec.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	rec.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	prof := new(MockProfiles)
	prof.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := newMemStore()
	svc := newTestService(store, rooms, rec, prof)
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	_, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// The profile write already landed: the known non-atomic window.
	prof.AssertCalled(t, "Upsert", mock.Anything, int64(7), "guest@example.com", 12320, mock.Anything)

	saved, getErr := store.Get(context.Background(), sess.ID)
	require.NoError(t, getErr)
	assert.Equal(t, StepPayment, saved.Step)
	assert.False(t, saved.Submitting)
	assert.Equal(t, "Payment failed. Please try again.", saved.LastError)
	assert.Empty(t, saved.BookingID)
}

func TestConfirm_OnlyFromPaymentStep(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)

	_, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestConfirm_CancelledByClose(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	rec := new(MockRecorder)
	prof := new(MockProfiles)

	store := newMemStore()
	svc := NewService(store, rooms, rec, prof, 500*time.Millisecond)
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
		done <- err
	}()

	// Let the confirm enter its simulated-payment wait, then close.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, svc.Close(context.Background(), sess.ID))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("confirm did not return after close")
	}

	// No write may have started.
	rec.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	prof.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	_, err := store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirm_DisconnectMidDelayReleasesSession(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	rec := new(MockRecorder)
	rec.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	rec.On("Create", mock.Anything, mock.Anything).Return(nil)
	prof := new(MockProfiles)
	prof.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := newMemStore()
	svc := NewService(store, rooms, rec, prof, 300*time.Millisecond)
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	reqCtx, disconnect := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(reqCtx, sess.ID, 7, "guest@example.com")
		done <- err
	}()

	// Drop the request while the confirm is in its simulated-payment wait.
	time.Sleep(50 * time.Millisecond)
	disconnect()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("confirm did not return after disconnect")
	}

	// Unlike Close, a disconnect leaves the session behind; it must come
	// back unlocked so the user can retry instead of waiting out the TTL.
	saved, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, saved.Step)
	assert.False(t, saved.Submitting)

	view, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
	require.NoError(t, err)
	assert.Equal(t, StepTicket, view.Session.Step)
}

// Session store whose reads never see the submitting flag, standing in
// for a second request that read the session before the first one's
// save landed.
type staleReadStore struct {
	*memStore
}

func (s *staleReadStore) Get(ctx context.Context, id string) (*Session, error) {
	sess, err := s.memStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Submitting = false
	return sess, nil
}

func TestConfirm_SimultaneousConfirmSingleBooking(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	rec := new(MockRecorder)
	rec.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	rec.On("Create", mock.Anything, mock.Anything).Return(nil)
	prof := new(MockProfiles)
	prof.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := &staleReadStore{newMemStore()}
	svc := NewService(store, rooms, rec, prof, 300*time.Millisecond)
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
		done <- err
	}()

	// The second confirm races the first mid-delay; even with a stale
	// session read it must be refused.
	time.Sleep(50 * time.Millisecond)
	_, err := svc.Confirm(context.Background(), sess.ID, 7, "guest@example.com")
	assert.ErrorIs(t, err, ErrSubmitting)

	require.NoError(t, <-done)
	rec.AssertNumberOfCalls(t, "Create", 1)
	prof.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestReopen_NewSessionResetsFlowState(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)

	rec := new(MockRecorder)
	rec.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	rec.On("Create", mock.Anything, mock.Anything).Return(nil)
	prof := new(MockProfiles)
	prof.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(newMemStore(), rooms, rec, prof)

	first := openSession(t, svc)
	toPayment(t, svc, first.ID)
	view, err := svc.Confirm(context.Background(), first.ID, 7, "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, StepTicket, view.Session.Step)
	require.NoError(t, svc.Close(context.Background(), first.ID))

	second := openSession(t, svc)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, StepDetails, second.Step)
	assert.Empty(t, second.BookingID)
	assert.Empty(t, second.LastError)
}

func TestUpdateParty_AppliesOccupancyPolicy(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)

	for i := 0; i < 3; i++ {
		_, err := svc.UpdateParty(context.Background(), sess.ID, OpAdultsInc)
		require.NoError(t, err)
	}

	view, err := svc.UpdateParty(context.Background(), sess.ID, OpRoomsDec)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Session.Party.Adults)
	assert.Equal(t, 2, view.Session.Party.Rooms, "decrement below minimum is a no-op")
	assert.Equal(t, 2, view.Quote.RoomsCount)
}

func TestSelectPayment(t *testing.T) {
	rooms := new(MockRoomGetter)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(superDeluxe(), nil)
	svc := newTestService(newMemStore(), rooms, new(MockRecorder), new(MockProfiles))
	sess := openSession(t, svc)
	toPayment(t, svc, sess.ID)

	view, err := svc.SelectPayment(context.Background(), sess.ID, domain.PaymentUPI)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUPI, view.Session.PaymentMethod)

	_, err = svc.SelectPayment(context.Background(), sess.ID, "cheque")
	assert.ErrorIs(t, err, ErrValidation)
}
