package rest

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"smileon/config"
	"smileon/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	// Anonymous write endpoints share one modest budget per IP.
	publicWriteLimit := h.rateLimitMiddleware(rate.Limit(1), 5)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		api.POST("/admin/login", h.adminLogin)

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/password", h.updatePassword)
			users.DELETE("/me", h.deleteCurrentUser)
			users.GET("/me/reservations", h.getMyReservations)
			users.GET("/me/consultations", h.getMyConsultations)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.GET("/", h.getUsers)
				admin.GET("/:id", h.getUserByID)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		api.GET("/schedule", h.getMonthSchedule)

		reservations := api.Group("/reservations")
		{
			reservations.POST("/", publicWriteLimit, h.optionalAuthMiddleware(), h.createReservation)
			reservations.POST("/verify", publicWriteLimit, h.verifyReservations)

			lookup := reservations.Group("/", h.lookupTokenMiddleware())
			{
				lookup.GET("/", h.getReservationsByLookup)
				lookup.POST("/:id/cancel", h.cancelOwnReservation)
			}
		}

		consultations := api.Group("/consultations")
		{
			consultations.GET("/", h.getConsultations)
			consultations.GET("/:id", h.getConsultationByID)
			consultations.POST("/", publicWriteLimit, h.optionalAuthMiddleware(), h.createConsultation)
			consultations.POST("/:id/verify", publicWriteLimit, h.verifyConsultation)
		}

		notices := api.Group("/notices")
		{
			notices.GET("/", h.getNotices)
			notices.GET("/:id", h.getNoticeByID)
		}

		posts := api.Group("/posts")
		{
			posts.GET("/", h.getPosts)
			posts.GET("/:id", h.getPostByID)
			posts.POST("/", publicWriteLimit, h.optionalAuthMiddleware(), h.createPost)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/", h.getReviews)
			reviews.GET("/:id", h.getReviewByID)
			reviews.POST("/", publicWriteLimit, h.optionalAuthMiddleware(), h.createReview)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)
		}

		faqs := api.Group("/faqs")
		{
			faqs.GET("/", h.getFAQs)
			faqs.GET("/:id", h.getFAQByID)
		}

		admin := api.Group("/admin")
		admin.Use(h.authMiddleware(), h.adminMiddleware())
		{
			admin.POST("/blocked-slots", h.blockSlot)
			admin.DELETE("/blocked-slots", h.unblockSlot)

			admin.GET("/reservations", h.getReservations)
			admin.GET("/reservations/:id", h.getReservationByID)
			admin.PUT("/reservations/:id/status", h.updateReservationStatus)
			admin.DELETE("/reservations/:id", h.deleteReservation)

			admin.GET("/consultations/:id", h.getConsultationForAdmin)
			admin.POST("/consultations/:id/reply", h.replyConsultation)
			admin.PUT("/consultations/:id", h.updateConsultation)
			admin.DELETE("/consultations/:id", h.deleteConsultation)

			admin.POST("/notices", h.createNotice)
			admin.PUT("/notices/:id", h.updateNotice)
			admin.DELETE("/notices/:id", h.deleteNotice)

			admin.PUT("/posts/:id", h.updatePost)
			admin.DELETE("/posts/:id", h.deletePost)

			admin.GET("/reviews", h.getReviewsForAdmin)
			admin.PUT("/reviews/:id", h.updateReview)
			admin.PUT("/reviews/:id/publish", h.publishReview)
			admin.DELETE("/reviews/:id", h.deleteReview)

			admin.POST("/doctors", h.createDoctor)
			admin.PUT("/doctors/:id", h.updateDoctor)
			admin.DELETE("/doctors/:id", h.deleteDoctor)
			admin.POST("/doctors/:id/photo", h.uploadDoctorPhoto)
			admin.DELETE("/doctors/:id/photo", h.deleteDoctorPhoto)
			admin.POST("/doctors/:id/education", h.addDoctorEducation)
			admin.DELETE("/doctors/education/:eduId", h.deleteDoctorEducation)
			admin.POST("/doctors/:id/careers", h.addDoctorCareer)
			admin.DELETE("/doctors/careers/:careerId", h.deleteDoctorCareer)

			admin.POST("/faqs", h.createFAQ)
			admin.PUT("/faqs/:id", h.updateFAQ)
			admin.DELETE("/faqs/:id", h.deleteFAQ)
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With", "X-Lookup-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(h.config.HTTP.AllowedOrigins) > 0 {
		cfg.AllowOrigins = h.config.HTTP.AllowedOrigins
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}

	return cors.New(cfg)
}
