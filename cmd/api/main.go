package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"heritagepalace/internal/config"
	"heritagepalace/internal/database"
	"heritagepalace/internal/middleware"
	"heritagepalace/internal/modules/auth"
	"heritagepalace/internal/modules/catalog"
	"heritagepalace/internal/modules/enquiry"
	"heritagepalace/internal/modules/profile"
	"heritagepalace/internal/modules/testimonial"
	"heritagepalace/internal/modules/ticket"
	"heritagepalace/internal/modules/wizard"
	jwtsvc "heritagepalace/internal/pkg/jwt"
	"heritagepalace/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	sessionStore := wizard.NewRedisStore(rdb, cfg.WizardSessionTTL)
	wizardService := wizard.NewService(
		sessionStore,
		roomRepo,
		bookingRepo,
		profileRepo,
		cfg.PaymentDelay,
	)
	wizardHandler := wizard.NewHandler(wizardService)

	profileService := profile.NewService(profileRepo, bookingRepo)
	profileHandler := profile.NewHandler(profileService)

	ticketService := ticket.NewService(bookingRepo, ticket.NewRenderer())
	ticketHandler := ticket.NewHandler(ticketService)

	testimonialService := testimonial.NewService(testimonialRepo)
	testimonialHandler := testimonial.NewHandler(testimonialService)

	enquiryService := enquiry.NewService(enquiryRepo)
	enquiryHandler := enquiry.NewHandler(enquiryService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		testimonialHandler.RegisterRoutes(v1)
		enquiryHandler.RegisterRoutes(v1)
		wizardHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			wizardHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			ticketHandler.RegisterRoutes(protected)
			testimonialHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Println("Listening on", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
