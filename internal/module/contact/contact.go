package contact

import (
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/model"

	"github.com/gin-gonic/gin"
)

// FeedbackReq is the contact form body.
type FeedbackReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitFeedback stores one contact form submission.
func SubmitFeedback(c *gin.Context) {
	var req FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding feedback request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	feedback := model.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		log.Error("saving feedback failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("feedback received", "feedback_id", feedback.ID, "email", req.Email)
	response.Success(c, gin.H{"feedback_id": feedback.ID})
}
