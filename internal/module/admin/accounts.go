package admin

import (
	"strings"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/jwt"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/model"
	"glowup-diaries/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const passwordSpecials = "!@#$%^&*-"

// validatePasswordStrength rejects passwords shorter than 8 characters
// or missing a letter, a digit or one of !@#$%^&*-.
func validatePasswordStrength(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hasLetter := false
	hasDigit := false
	hasSpecial := false
	for _, char := range password {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
			hasLetter = true
		case char >= '0' && char <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, char):
			hasSpecial = true
		}
	}

	if !hasLetter {
		return errors.New("password must contain at least one letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	if !hasSpecial {
		return errors.New("password must contain at least one special character (!@#$%^&*-)")
	}
	return nil
}

type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}

// Register provisions an account. Only a signed-in admin reaches this;
// setting is_admin also grants the new account admin membership.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding register request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("password rejected", "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips(err.Error()))
		return
	}

	var existing model.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		log.Warn("account already exists", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("looking up account failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	hash, err := tools.PasswordEncrypt(req.Password)
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("creating account failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.IsAdmin {
		if err := database.DB.Create(&model.AdminUser{UserID: user.ID}).Error; err != nil {
			log.Error("granting admin membership failed", "error", err, "user_id", user.ID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	log.Info("account created", "user_id", user.ID, "email", user.Email, "is_admin", req.IsAdmin)
	response.Success(c, gin.H{"user_id": user.ID})
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword updates the signed-in user's own password after
// verifying the old one.
func ChangePassword(c *gin.Context) {
	claims, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding change password request failed", "error", err, "user_id", claims.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("new password rejected", "user_id", claims.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips(err.Error()))
		return
	}

	var user model.User
	if err := database.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		log.Error("fetching user failed", "error", err, "user_id", claims.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("old password rejected", "user_id", claims.UserID)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	hash, err := tools.PasswordEncrypt(req.NewPassword)
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&user).Update("password", hash).Error; err != nil {
		log.Error("updating password failed", "error", err, "user_id", claims.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("password changed", "user_id", claims.UserID)
	response.Success(c)
}

// seedBootstrapAdmin makes sure the configured bootstrap account
// exists and holds admin membership. Without it a fresh database has
// no account that can pass the admin gate.
func seedBootstrapAdmin() {
	cfg := config.Get().Admin
	if cfg.Email == "" || cfg.Password == "" {
		return
	}

	var user model.User
	err := database.DB.Where("email = ?", cfg.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := tools.PasswordEncrypt(cfg.Password)
		if hashErr != nil {
			log.Error("hashing bootstrap password failed", "error", hashErr)
			return
		}
		user = model.User{Email: cfg.Email, Password: hash, Name: "Administrator"}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Error("creating bootstrap admin failed", "error", err, "email", cfg.Email)
			return
		}
		log.Info("bootstrap admin created", "email", cfg.Email)
	case err != nil:
		log.Error("looking up bootstrap admin failed", "error", err, "email", cfg.Email)
		return
	}

	var membership model.AdminUser
	err = database.DB.Where("user_id = ?", user.ID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := database.DB.Create(&model.AdminUser{UserID: user.ID}).Error; err != nil {
			log.Error("granting bootstrap admin membership failed", "error", err, "user_id", user.ID)
		}
	}
}
