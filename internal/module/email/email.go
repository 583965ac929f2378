package email

import (
	"glowup-diaries/internal/global/mailer"
	"glowup-diaries/internal/global/response"

	"github.com/gin-gonic/gin"
)

// SendEmailReq is the outbound email body.
type SendEmailReq struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SendEmail relays one email through the delivery provider.
func SendEmail(c *gin.Context) {
	var req SendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding email request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	result, err := mailer.Send(c.Request.Context(), req.To, req.Subject, req.Content)
	if err != nil {
		log.Error("sending email failed", "error", err, "to", req.To, "subject", req.Subject)
		response.Fail(c, response.ErrEmailSend.WithOrigin(err).WithTips(err.Error()))
		return
	}

	log.Info("email sent", "to", req.To, "subject", req.Subject)
	response.Success(c, result)
}
