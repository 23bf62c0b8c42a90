package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/event-management-api/docs"
	v1 "github.com/vietanh2810/event-management-api/internal/api/handler/v1"
	"github.com/vietanh2810/event-management-api/internal/api/middleware"
	"github.com/vietanh2810/event-management-api/internal/config"
	"github.com/vietanh2810/event-management-api/internal/notify"
	"github.com/vietanh2810/event-management-api/internal/payment"
	"github.com/vietanh2810/event-management-api/internal/repository"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
	"github.com/vietanh2810/event-management-api/internal/service"
)

const basePath = "/api"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// Handlers groups everything MountHandlers routes to.
type Handlers struct {
	Auth     *v1.AuthHandler
	User     *v1.UserHandler
	Event    *v1.EventHandler
	Resource *v1.ResourceHandler
	Booking  *v1.BookingHandler
	Message  *v1.MessageHandler
	Payment  *v1.PaymentHandler
}

// NewServer wires DAOs, repositories, services and handlers. rdb may be nil,
// in which case rate limiting is skipped.
func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client, publisher notify.Publisher, gateway payment.Gateway) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db, publisher, gateway), middleware.NewRateLimiter(rdb, conf.RateLimit))

	return s
}

func (s *Server) initHandlers(db *gorm.DB, publisher notify.Publisher, gateway payment.Gateway) Handlers {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	resourceRepo := repository.NewResourceRepository(dao.NewResourceDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	messageRepo := repository.NewMessageRepository(dao.NewMessageDAO(db))
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))

	paymentSvc := service.NewPaymentService(paymentRepo, gateway, s.Config.Payment.KeySecret, s.Config.Payment.Currency, publisher)

	return Handlers{
		Auth:     v1.NewAuthHandler(s.Config.API, service.NewAuthService(userRepo)),
		User:     v1.NewUserHandler(service.NewUserService(userRepo)),
		Event:    v1.NewEventHandler(service.NewEventService(eventRepo, userRepo)),
		Resource: v1.NewResourceHandler(service.NewResourceService(resourceRepo)),
		Booking:  v1.NewBookingHandler(service.NewBookingService(bookingRepo, eventRepo, userRepo, publisher)),
		Message:  v1.NewMessageHandler(service.NewMessageService(messageRepo, eventRepo, userRepo)),
		Payment:  v1.NewPaymentHandler(paymentSvc),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h Handlers, limiter *middleware.RateLimiter) {
	public := s.Router.Group(basePath, limiter.Limit())
	{
		public.POST("/user/register", h.Auth.HandleRegister)
		public.POST("/user/login", h.Auth.HandleLogin)
	}

	authn := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	secured := s.Router.Group(basePath, authn.VerifyJWT(), middleware.RequireRoles(middleware.DefaultPolicy()))
	{
		secured.GET("/profile", h.User.HandleGetProfile)
		secured.PUT("/profile", h.User.HandleUpdateProfile)
	}

	planner := secured.Group("/planner")
	{
		planner.POST("/event", h.Event.HandleCreateEvent)
		planner.GET("/events", h.Event.HandleGetEvents)
		planner.PUT("/event/:eventId", h.Event.HandleUpdateEvent)
		planner.DELETE("/event/:eventId", h.Event.HandleDeleteEvent)
		planner.GET("/event-details/:eventId", h.Event.HandleGetEvent)
		planner.GET("/event-detail/:title", h.Event.HandleSearchEvents)
		planner.GET("/staff", h.Event.HandleGetStaff)
		planner.POST("/assign-staff", h.Event.HandleAssignStaff)

		planner.POST("/resource", h.Resource.HandleAddResource)
		planner.GET("/resources", h.Resource.HandleGetResources)
		planner.POST("/allocate-resources", h.Resource.HandleAllocateResource)

		planner.GET("/bookings", h.Booking.HandleGetBookings)
		planner.GET("/booking/:bookingId/status", h.Booking.HandleGetBookingStatus)
		planner.PUT("/booking/:bookingId/status", h.Booking.HandleUpdateBookingStatus)

		planner.POST("/send-message", h.Message.HandleSendMessage)
		planner.GET("/messages/:eventId", h.Message.HandleGetMessages)
	}

	staff := secured.Group("/staff")
	{
		staff.GET("/allEvents", h.Event.HandleGetAssignedEvents)
		staff.GET("/event-details/:eventId", h.Event.HandleGetEvent)
		staff.GET("/event-detailsbyTitle/:title", h.Event.HandleSearchEvents)
		staff.PUT("/update-setup/:eventId", h.Event.HandleUpdateEvent)

		staff.POST("/send-message", h.Message.HandleSendMessage)
		staff.GET("/messages/:eventId", h.Message.HandleGetMessages)
	}

	client := secured.Group("/client")
	{
		client.GET("/booking-details/:eventId", h.Event.HandleGetEvent)
		client.GET("/allEvents", h.Event.HandleGetEvents)
		client.GET("/event-detailsbyTitleforClient/:title", h.Event.HandleSearchEvents)

		client.GET("/my-bookings", h.Booking.HandleGetMyBookings)
		client.GET("/my-booking/:bookingId", h.Booking.HandleGetMyBooking)
		client.POST("/create-booking", h.Booking.HandleCreateBooking)

		client.POST("/send-message", h.Message.HandleSendMessage)
		client.GET("/messages/:eventId", h.Message.HandleGetMessages)
	}

	payments := secured.Group("/payment", limiter.Limit())
	{
		payments.POST("/create-order", h.Payment.HandleCreateOrder)
		payments.POST("/verify", h.Payment.HandleVerifyPayment)
		payments.GET("/status/:paymentId", h.Payment.HandleGetPaymentStatus)
		payments.GET("/booking/:bookingId", h.Payment.HandleGetBookingPayment)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Event Management API"
	docs.SwaggerInfo.Description = "Planner, staff and client API for events, resources, bookings and payments."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
