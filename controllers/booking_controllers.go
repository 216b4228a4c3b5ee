package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amigosdev/amigos-backend/mailer"
	"github.com/amigosdev/amigos-backend/models"
	"github.com/amigosdev/amigos-backend/utils"
)

type BookingController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
	Sender string
}

func NewBookingController(db *gorm.DB, m mailer.Mailer, sender string) *BookingController {
	return &BookingController{DB: db, Mailer: m, Sender: sender}
}

// BookTable validates the reservation, stores it, then emails a confirmation
// to the guest. The write is committed before the email attempt, so a
// delivery failure is reported as a partial success, never rolled back.
func (bc *BookingController) BookTable(c *gin.Context) {
	var req struct {
		Name     string   `json:"name" binding:"required"`
		Email    string   `json:"email" binding:"required"`
		Phone    string   `json:"phone" binding:"required"`
		Guests   int      `json:"guests" binding:"required,min=1"`
		Datetime string   `json:"datetime" binding:"required"`
		Message  string   `json:"message"`
		Preorder []string `json:"preorder"`
	}
	// min=1 makes the guest floor explicit: a party of zero is rejected the
	// same way a missing count is.
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	date, timePart := splitDatetime(req.Datetime)

	booking := models.Booking{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Guests:   req.Guests,
		Date:     date,
		Time:     timePart,
		Message:  req.Message,
		Preorder: req.Preorder,
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.ErrorLogger.Printf("Booking insert failed for %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	body := bookingConfirmation(booking)
	if err := bc.Mailer.Send(bc.Sender, booking.Email, "Booking Confirmation - Amigos Restaurant", body); err != nil {
		utils.ErrorLogger.Printf("Booking email failed for %s: %v", booking.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Booking saved, but email failed")
		return
	}

	utils.InfoLogger.Printf("Booking confirmed for %s (%d guests, %s %s)",
		booking.Email, booking.Guests, booking.Date, booking.Time)
	utils.RespondMessage(c, http.StatusOK, "Booking successful. Email sent.")
}

// splitDatetime breaks a combined "2024-12-25T19:30" value on the first "T".
// A value without the separator keeps everything in the date part.
func splitDatetime(datetime string) (string, string) {
	parts := strings.SplitN(datetime, "T", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func bookingConfirmation(b models.Booking) string {
	message := b.Message
	if message == "" {
		message = "None"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.Name)
	fmt.Fprintf(&sb, "Your table for %d guest(s) is confirmed!\n", b.Guests)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date)
	fmt.Fprintf(&sb, "Time: %s\n", b.Time)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Message: %s", message)

	if len(b.Preorder) > 0 {
		sb.WriteString("\n\nPreorder Items:\n- ")
		sb.WriteString(strings.Join(b.Preorder, "\n- "))
	}

	sb.WriteString("\n\nThanks for choosing Amigos!\n- Amigos Team")
	return sb.String()
}
