package admin

import (
	"fmt"
	"time"

	"glowup-diaries/config"
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/jwt"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/global/session"
	"glowup-diaries/internal/model"
	"glowup-diaries/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// LoginPage is the one admin path served without a session. The gate
// lets it through so a signed-out visitor always has somewhere to land.
func LoginPage(c *gin.Context) {
	response.Success(c, gin.H{"page": "login"})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials, opens a session and hands back a token.
// Wrong email and wrong password are indistinguishable to the caller.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrInvalidPassword)
		return
	case err != nil:
		log.Error("fetching user failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("login rejected", "email", req.Email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	sid := session.NewID()
	ttl := time.Duration(config.Get().JWT.AccessExpire) * time.Second
	if err := session.Create(c.Request.Context(), sid, user.ID, ttl); err != nil {
		log.Error("creating session failed", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}

	token := jwt.CreateToken(jwt.Payload{
		UserID:    user.ID,
		Email:     user.Email,
		SessionID: sid,
	})

	c.SetCookie(session.CookieName, token, int(ttl.Seconds()), "/", config.Get().Domain, false, true)

	log.Info("admin login", "user_id", user.ID, "email", user.Email)
	response.Success(c, gin.H{
		"token":    token,
		"user":     user,
		"is_admin": isAdmin(user.ID),
	})
}

// Logout destroys the live session and clears the cookie.
func Logout(c *gin.Context) {
	claims, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	if err := session.Destroy(c.Request.Context(), claims.SessionID); err != nil {
		log.Error("destroying session failed", "error", err, "user_id", claims.UserID)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	c.SetCookie(session.CookieName, "", -1, "/", config.Get().Domain, false, true)

	log.Info("admin logout", "user_id", claims.UserID)
	response.Success(c)
}

// Me returns the signed-in user and their admin membership.
func Me(c *gin.Context) {
	claims, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrTokenInvalid)
		return
	}

	var user model.User
	if err := database.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"user": user, "is_admin": isAdmin(user.ID)})
}

// Dashboard is the admin landing view. The gate has already vetted the
// session; the handler re-checks membership itself so a revocation that
// lands between the two lookups still locks the page.
func Dashboard(c *gin.Context) {
	claims, exists := jwt.GetUserPayload(c)
	if !exists || !isAdmin(claims.UserID) {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	response.Success(c, gin.H{
		"page": "dashboard",
		"user": gin.H{"id": claims.UserID, "email": claims.Email},
	})
}

// Stats reports row counts per directory for the dashboard.
func Stats(c *gin.Context) {
	counts := map[string]int64{}
	for name, m := range exportTargets {
		var n int64
		if err := database.DB.Model(m.probe).Count(&n).Error; err != nil {
			log.Error("counting rows failed", "error", err, "collection", name)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		counts[name] = n
	}

	response.Success(c, counts)
}

type exportTarget struct {
	probe interface{}
	fetch func() (interface{}, error)
}

func fetchAll[T any](order string) func() (interface{}, error) {
	return func() (interface{}, error) {
		var rows []T
		err := database.DB.Order(order).Find(&rows).Error
		return rows, err
	}
}

var exportTargets = map[string]exportTarget{
	"events":        {probe: &model.Event{}, fetch: fetchAll[model.Event]("date ASC")},
	"opportunities": {probe: &model.Opportunity{}, fetch: fetchAll[model.Opportunity]("deadline ASC")},
	"jobs":          {probe: &model.Job{}, fetch: fetchAll[model.Job]("deadline ASC")},
	"resources":     {probe: &model.Resource{}, fetch: fetchAll[model.Resource]("created_at DESC")},
	"feedback":      {probe: &model.Feedback{}, fetch: fetchAll[model.Feedback]("created_at DESC")},
}

// Export streams one collection as an xlsx attachment.
func Export(c *gin.Context) {
	collection := c.Query("collection")
	target, ok := exportTargets[collection]
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("unknown collection"))
		return
	}

	rows, err := target.fetch()
	if err != nil {
		log.Error("fetching export rows failed", "error", err, "collection", collection)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, collection, rows); err != nil {
		log.Error("building export sheet failed", "error", err, "collection", collection)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	_ = f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s-%s.xlsx", collection, time.Now().Format("2006-01-02"))
	tools.SendAttachmentHeaders(c, filename, tools.ExcelContentType)
	if err := f.Write(c.Writer); err != nil {
		log.Error("writing export failed", "error", err, "collection", collection)
	}
}

func isAdmin(userID uint) bool {
	var admin model.AdminUser
	err := database.DB.Where("user_id = ?", userID).First(&admin).Error
	return err == nil
}
