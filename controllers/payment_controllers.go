package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amigosdev/amigos-backend/mailer"
	"github.com/amigosdev/amigos-backend/models"
	"github.com/amigosdev/amigos-backend/utils"
)

// paymentRedirect is where the frontend sends the customer after a
// successful payment.
const paymentRedirect = "cashsuc.html?clearCart=true"

type PaymentController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
	Sender string
}

func NewPaymentController(db *gorm.DB, m mailer.Mailer, sender string) *PaymentController {
	return &PaymentController{DB: db, Mailer: m, Sender: sender}
}

// Pay records the payment and emails an order confirmation. Every submitted
// payload is accepted as-is; there is no required-field gate on this route.
// Like booking, a committed write with a failed email is reported as a
// partial success rather than a bare "Payment failed".
func (pc *PaymentController) Pay(c *gin.Context) {
	var req struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		Phone         string  `json:"phone"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusInternalServerError, "Payment failed")
		return
	}

	payment := models.PayUser{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.ErrorLogger.Printf("Payment insert failed for %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Payment failed")
		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour order has been placed successfully!\nPayment Method: %s\nAmount: %s\nContact: %s\n\nThank you for choosing Amigos!\n- Amigos Team",
		payment.Name, payment.PaymentMethod, utils.FormatAmount(payment.Amount), payment.Phone)

	if err := pc.Mailer.Send(pc.Sender, payment.Email, "Order Placed - Amigos Restaurant", body); err != nil {
		utils.ErrorLogger.Printf("Payment email failed for %s: %v", payment.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Payment saved, but email failed")
		return
	}

	utils.InfoLogger.Printf("Payment recorded for %s (%s, %s)",
		payment.Email, payment.PaymentMethod, utils.FormatAmount(payment.Amount))
	utils.RespondRedirect(c, http.StatusOK, "Payment successful", paymentRedirect)
}
