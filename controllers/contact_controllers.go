package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amigosdev/amigos-backend/mailer"
	"github.com/amigosdev/amigos-backend/utils"
)

// ContactController relays contact-form submissions to the restaurant inbox
// and owns the operational test-email endpoint. Nothing here touches the
// database; this route is send-only.
type ContactController struct {
	Mailer   mailer.Mailer
	Sender   string
	Receiver string
}

func NewContactController(m mailer.Mailer, sender, receiver string) *ContactController {
	return &ContactController{Mailer: m, Sender: sender, Receiver: receiver}
}

// SendEmail forwards a contact-form message with the submitter as the
// apparent sender, so replying from the inbox reaches them directly.
func (cc *ContactController) SendEmail(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	from := fmt.Sprintf("%s <%s>", req.Name, req.Email)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", req.Name, req.Email, req.Comment)

	if err := cc.Mailer.Send(from, cc.Receiver, "New Contact Message - Amigos", body); err != nil {
		utils.ErrorLogger.Printf("Contact email failed from %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Failed to send email.")
		return
	}

	utils.InfoLogger.Printf("Contact email relayed from %s", req.Email)
	utils.RespondMessage(c, http.StatusOK, "Email sent successfully.")
}

// TestEmail is an operational smoke test for the mail relay. It always
// answers 200 with a human-readable outcome; monitoring reads the body.
func (cc *ContactController) TestEmail(c *gin.Context) {
	err := cc.Mailer.Send(cc.Sender, cc.Receiver, "Test Email",
		"This is a test email from the Amigos backend.")
	if err != nil {
		utils.ErrorLogger.Printf("Test email failed: %v", err)
		c.String(http.StatusOK, "Failed to send test email.")
		return
	}
	c.String(http.StatusOK, "Test email sent!")
}
