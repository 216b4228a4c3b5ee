package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amigosdev/amigos-backend/controllers"
	"github.com/amigosdev/amigos-backend/mailer"
	"github.com/amigosdev/amigos-backend/middlewares"
)

// SetupRouter wires every route. Paths match the deployed frontend exactly,
// so this server is a drop-in behind the existing site. The rate limiter is
// registered here with the other middlewares: gin snapshots each route's
// handler chain at registration, so anything added with Use afterwards never
// runs for these routes.
func SetupRouter(db *gorm.DB, m mailer.Mailer, sender, receiver string, limiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(limiter.RateLimit())

	authCtrl := controllers.NewAuthController(db)
	bookingCtrl := controllers.NewBookingController(db, m, sender)
	paymentCtrl := controllers.NewPaymentController(db, m, sender)
	contactCtrl := controllers.NewContactController(m, sender, receiver)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Amigos Restaurant Backend is running")
	})

	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.POST("/book-table", bookingCtrl.BookTable)
	r.POST("/pay", paymentCtrl.Pay)
	r.POST("/send-email", contactCtrl.SendEmail)
	r.GET("/test-email", contactCtrl.TestEmail)

	return r
}
