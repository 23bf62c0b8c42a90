package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/event-management-api/internal/api/middleware"
	"github.com/vietanh2810/event-management-api/internal/domain"
)

// newRouter returns an engine that authenticates every request as principal.
func newRouter(principal *domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if principal != nil {
		r.Use(func(ctx *gin.Context) {
			ctx.Set(middleware.ContextKeyUsername, principal.Username)
			ctx.Set(middleware.ContextKeyRole, principal.Role)
			ctx.Next()
		})
	}
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetProfile(ctx context.Context, principal domain.Principal) (domain.User, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, principal domain.Principal, upd domain.ProfileUpdate) (domain.User, error) {
	args := m.Called(ctx, principal, upd)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) CreateEvent(ctx context.Context, principal domain.Principal, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, principal, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) GetEventByID(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) SearchEventsByTitle(ctx context.Context, title string) ([]domain.Event, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id uint, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, id, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEventService) AssignStaff(ctx context.Context, eventID, staffID uint) (domain.Event, error) {
	args := m.Called(ctx, eventID, staffID)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) GetAllStaff(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockEventService) GetEventsForStaff(ctx context.Context, principal domain.Principal) ([]domain.Event, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).([]domain.Event), args.Error(1)
}

type mockResourceService struct {
	mock.Mock
}

func (m *mockResourceService) AddResource(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	args := m.Called(ctx, resource)
	return args.Get(0).(domain.Resource), args.Error(1)
}

func (m *mockResourceService) GetResources(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *mockResourceService) AllocateResource(ctx context.Context, eventID, resourceID uint, quantity int) (domain.Allocation, error) {
	args := m.Called(ctx, eventID, resourceID, quantity)
	return args.Get(0).(domain.Allocation), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, principal domain.Principal, eventID uint, requirements string) (domain.Booking, error) {
	args := m.Called(ctx, principal, eventID, requirements)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBookingForClient(ctx context.Context, principal domain.Principal, id uint) (domain.Booking, error) {
	args := m.Called(ctx, principal, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetClientBookings(ctx context.Context, principal domain.Principal) ([]domain.Booking, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingService) GetBookingStatus(ctx context.Context, id uint) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, id uint, status string, notes *string) (domain.Booking, error) {
	args := m.Called(ctx, id, status, notes)
	return args.Get(0).(domain.Booking), args.Error(1)
}

type mockMessageService struct {
	mock.Mock
}

func (m *mockMessageService) SendMessage(ctx context.Context, principal domain.Principal, eventID uint, content string) (domain.Message, error) {
	args := m.Called(ctx, principal, eventID, content)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *mockMessageService) GetEventMessages(ctx context.Context, eventID uint) ([]domain.Message, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Message), args.Error(1)
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) CreateOrder(ctx context.Context, principal domain.Principal, amount int64) (domain.PaymentOrder, error) {
	args := m.Called(ctx, principal, amount)
	return args.Get(0).(domain.PaymentOrder), args.Error(1)
}

func (m *mockPaymentService) VerifyAndCreateBooking(ctx context.Context, principal domain.Principal, c domain.PaymentConfirmation) (domain.Payment, domain.Booking, error) {
	args := m.Called(ctx, principal, c)
	return args.Get(0).(domain.Payment), args.Get(1).(domain.Booking), args.Error(2)
}

func (m *mockPaymentService) GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (domain.Payment, error) {
	args := m.Called(ctx, gatewayPaymentID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockPaymentService) GetPaymentByBooking(ctx context.Context, bookingID uint) (domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(domain.Payment), args.Error(1)
}
