package Controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amigosdev/amigos-backend/controllers"
)

const testReceiver = "inbox@example.com"

func setupContactRouter(m *fakeMailer) *gin.Engine {
	router := gin.Default()
	contactCtrl := controllers.NewContactController(m, testSender, testReceiver)
	router.POST("/send-email", contactCtrl.SendEmail)
	router.GET("/test-email", contactCtrl.TestEmail)
	return router
}

func TestSendEmailSuccess(t *testing.T) {
	setupTest()
	m := &fakeMailer{}
	router := setupContactRouter(m)

	w := postJSON(t, router, "/send-email", map[string]string{
		"name":    "Carol",
		"email":   "carol@example.com",
		"comment": "Loved the tacos!",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Email sent successfully.", decodeResponse(t, w)["message"])

	assert.Equal(t, 1, m.sentCount())
	mail := m.sent[0]
	assert.Equal(t, testReceiver, mail.To)
	// The submitter shows up as the apparent sender so replies reach them.
	assert.Contains(t, mail.From, "Carol")
	assert.Contains(t, mail.From, "carol@example.com")
	assert.Contains(t, mail.Body, "Loved the tacos!")
}

func TestSendEmailMissingFields(t *testing.T) {
	setupTest()
	m := &fakeMailer{}
	router := setupContactRouter(m)

	for _, payload := range []map[string]string{
		{"email": "carol@example.com", "comment": "hi"},
		{"name": "Carol", "comment": "hi"},
		{"name": "Carol", "email": "carol@example.com"},
	} {
		w := postJSON(t, router, "/send-email", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields are required.", decodeResponse(t, w)["message"])
	}

	assert.Equal(t, 0, m.sentCount())
}

func TestSendEmailDeliveryFailure(t *testing.T) {
	setupTest()
	m := &fakeMailer{err: errors.New("relay unreachable")}
	router := setupContactRouter(m)

	w := postJSON(t, router, "/send-email", map[string]string{
		"name":    "Carol",
		"email":   "carol@example.com",
		"comment": "hello",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email.", decodeResponse(t, w)["message"])
}

func TestTestEmailEndpoint(t *testing.T) {
	setupTest()
	m := &fakeMailer{}
	router := setupContactRouter(m)

	req, _ := http.NewRequest("GET", "/test-email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Test email sent!", w.Body.String())
	assert.Equal(t, 1, m.sentCount())
	assert.Equal(t, testReceiver, m.sent[0].To)
}

func TestTestEmailEndpointFailure(t *testing.T) {
	setupTest()
	m := &fakeMailer{err: errors.New("relay unreachable")}
	router := setupContactRouter(m)

	req, _ := http.NewRequest("GET", "/test-email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The diagnostic route never answers non-200; the body carries the outcome.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Failed to send test email.", w.Body.String())
}
