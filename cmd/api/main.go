package main

import (
	"net/http"
	"os"

	"doctorsportal/cmd/internal/auth"
	"doctorsportal/cmd/internal/domain/sqlite"
	"doctorsportal/cmd/internal/domain/sqlite/repository"
	"doctorsportal/cmd/internal/integration/mail"
	"doctorsportal/cmd/internal/integration/payment"
	"doctorsportal/cmd/internal/routes"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./database.db"
	}

	// Init SQLite
	db, err := sqlite.Init(dbPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	if os.Getenv("SEED_CATALOG") == "true" {
		if err := sqlite.SeedCatalog(db); err != nil {
			log.Fatal("failed to seed option catalog", err)
		}
	}

	tokens := auth.NewTokenManager(secret)
	intents := payment.NewRazorpayClient()
	mailer := mail.NewSMTPMailer()

	// Getting repositories
	optionRepo := repository.NewOptionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Getting services
	availabilityService := service.NewAvailabilityService(optionRepo, bookingRepo)
	bookingService := service.NewBookingService(bookingRepo, paymentRepo, validate, mailer)
	userService := service.NewUserService(userRepo, validate, tokens)
	doctorService := service.NewDoctorService(doctorRepo, validate)
	paymentService := service.NewPaymentService(intents, validate)

	// Getting routes
	availabilityRoutes := routes.NewAvailabilityDefault(availabilityService)
	bookingRoutes := routes.NewBookingDefault(bookingService)
	userRoutes := routes.NewUserDefault(userService)
	doctorRoutes := routes.NewDoctorDefault(doctorService)
	paymentRoutes := routes.NewPaymentDefault(paymentService)

	requireAuth := auth.Require(tokens)
	requireAdmin := auth.RequireAdmin(userRepo)

	e := echo.New()
	e.Use(middleware.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "doctors-portal-server is running")
	})

	// Availability
	e.GET("/appointmentOptions", availabilityRoutes.GetOptions)
	e.GET("/v2/appointmentOptions", availabilityRoutes.GetOptionsV2)
	e.GET("/appointmentSpecialty", availabilityRoutes.GetSpecialties)

	// Bookings
	e.POST("/bookings", bookingRoutes.CreateBooking)
	e.GET("/bookings", bookingRoutes.GetBookings, requireAuth)
	e.GET("/booking/:id", bookingRoutes.GetBooking)

	// Users
	e.POST("/users", userRoutes.CreateUser)
	e.GET("/users", userRoutes.GetUsers)
	e.GET("/users/admin/:email", userRoutes.GetAdminStatus)
	e.PUT("/users/admin/:id", userRoutes.GrantAdmin, requireAuth, requireAdmin)
	e.GET("/jwt", userRoutes.IssueToken)

	// Doctors
	e.POST("/doctors", doctorRoutes.AddDoctor, requireAuth, requireAdmin)
	e.GET("/doctors", doctorRoutes.GetDoctors, requireAuth, requireAdmin)
	e.DELETE("/doctors/:id", doctorRoutes.RemoveDoctor, requireAuth, requireAdmin)

	// Payments
	e.POST("/create-payment-intent", paymentRoutes.CreatePaymentIntent)
	e.POST("/payments", bookingRoutes.CreatePayment)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	err = e.Start(":" + port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("apptdate", validators.IsAppointmentDate)
	_ = validate.RegisterValidation("slotlabel", validators.IsSlotLabel)
}
