package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/notify"
	"github.com/vietanh2810/event-management-api/internal/payment"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByTitle(ctx context.Context, title string) ([]domain.Event, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindByAssignedStaff(ctx context.Context, staffID uint) ([]domain.Event, error) {
	args := m.Called(ctx, staffID)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error) {
	args := m.Called(ctx, eventID, staffID)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockResourceRepository struct {
	mock.Mock
}

func (m *mockResourceRepository) Create(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	args := m.Called(ctx, resource)
	return args.Get(0).(domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) FindAll(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) FindByID(ctx context.Context, id uint) (domain.Resource, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) Allocate(ctx context.Context, allocation domain.Allocation) (domain.Allocation, error) {
	args := m.Called(ctx, allocation)
	return args.Get(0).(domain.Allocation), args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) FindByClientID(ctx context.Context, clientID uint) ([]domain.Booking, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error) {
	args := m.Called(ctx, id, status, notes)
	return args.Get(0).(domain.Booking), args.Error(1)
}

type mockMessageRepository struct {
	mock.Mock
}

func (m *mockMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *mockMessageRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Message, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Message), args.Error(1)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Create(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (domain.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (domain.Payment, error) {
	args := m.Called(ctx, gatewayPaymentID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByBookingID(ctx context.Context, bookingID uint) (domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockPaymentRepository) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentRepository) ConfirmWithBooking(ctx context.Context, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Payment), args.Get(1).(domain.Booking), args.Error(2)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(ctx context.Context, req payment.OrderRequest) (payment.Order, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payment.Order), args.Error(1)
}

func (m *mockGateway) KeyID() string {
	return "rzp_test_key"
}

type recordingPublisher struct {
	queues []string
	events []notify.BookingEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, queue string, event notify.BookingEvent) error {
	p.queues = append(p.queues, queue)
	p.events = append(p.events, event)
	return p.err
}
