package resource

import (
	"strings"
	"time"

	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/filestore"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/listing"
	"glowup-diaries/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ListResourcesReq struct {
	Search  string `form:"search" json:"search"`
	Filters string `form:"filters" json:"filters"`
}

// ListResources serves the public resources directory, newest first.
// Fetch failures degrade to an empty directory.
func ListResources(c *gin.Context) {
	var req ListResourcesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var resources []model.Resource
	if err := database.DB.Order("created_at DESC").Find(&resources).Error; err != nil {
		log.Error("fetching resources failed", "error", err)
		resources = nil
	}

	filters := listing.ParseFilters(req.Filters)
	log.Debug("directory query", "search", req.Search, "filters", filters.IDs())
	filtered := listing.Resources.Apply(resources, req.Search, filters, time.Now())

	response.Success(c, gin.H{
		"resources":      filtered,
		"total":          len(filtered),
		"filter_options": listing.Resources.Options,
	})
}

// AccessDecision is the branch a client takes for a resource: premium
// content opens in a new context ("access"), free content downloads.
type AccessDecision struct {
	Action   string `json:"action"` // "access" or "download"
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// decideAccess picks the action from the premium flag alone. It is
// pure; URL signing happens in the handler on top of the decision.
func decideAccess(res model.Resource) AccessDecision {
	if res.IsPremium {
		return AccessDecision{Action: "access", URL: res.FileURL}
	}
	filename := res.FileURL[strings.LastIndex(res.FileURL, "/")+1:]
	if filename == "" {
		filename = res.Title
	}
	return AccessDecision{Action: "download", URL: res.FileURL, Filename: filename}
}

// AccessResource resolves how a visitor gets at a resource's file.
// Premium files stored in our bucket get a short-lived presigned URL so
// the bucket can stay private.
func AccessResource(c *gin.Context) {
	id := c.Param("id")

	var res model.Resource
	err := database.DB.Where("id = ?", id).First(&res).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound)
		return
	case err != nil:
		log.Error("fetching resource failed", "error", err, "resource_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	decision := decideAccess(res)
	if res.IsPremium && res.FileKey != "" {
		signed, err := filestore.Get().PresignedDownloadURL(c.Request.Context(), res.FileKey, 0)
		if err != nil {
			log.Error("presigning resource url failed", "error", err, "resource_id", id)
			response.Fail(c, response.ErrFileStore.WithOrigin(err))
			return
		}
		decision.URL = signed
	}

	response.Success(c, decision)
}

type ResourceCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,oneof='career development' 'study materials' templates guides worksheets courses"`
	IsPremium   bool   `json:"is_premium"`
	Featured    bool   `json:"featured"`
	FileURL     string `json:"file_url"`
}

type ResourceUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsPremium   *bool   `json:"is_premium"`
	Featured    *bool   `json:"featured"`
	FileURL     *string `json:"file_url"`
}

func CreateResource(c *gin.Context) {
	var req ResourceCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding create resource request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	resource := model.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsPremium:   req.IsPremium,
		Featured:    req.Featured,
		FileURL:     req.FileURL,
	}

	if err := database.DB.Create(&resource).Error; err != nil {
		log.Error("creating resource failed", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("resource created", "resource_id", resource.ID, "title", resource.Title)
	response.Success(c, gin.H{"resource_id": resource.ID})
}

func UpdateResource(c *gin.Context) {
	id := c.Param("id")

	var req ResourceUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var resource model.Resource
	err := database.DB.Where("id = ?", id).First(&resource).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsPremium != nil {
		updates["is_premium"] = *req.IsPremium
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.FileURL != nil {
		updates["file_url"] = *req.FileURL
	}

	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&resource).Updates(updates).Error; err != nil {
		log.Error("updating resource failed", "error", err, "resource_id", resource.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("resource updated", "resource_id", resource.ID)
	response.Success(c)
}

func DeleteResource(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Where("id = ?", id).Delete(&model.Resource{})
	if result.Error != nil {
		log.Error("deleting resource failed", "error", result.Error, "resource_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound)
		return
	}

	log.Info("resource deleted", "resource_id", id)
	response.Success(c)
}

// UploadResourceFile stores a resource's file in the bucket and points
// the record at it.
func UploadResourceFile(c *gin.Context) {
	id := c.Param("id")

	var resource model.Resource
	err := database.DB.Where("id = ?", id).First(&resource).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound)
		return
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("missing file field"))
		return
	}

	fileURL, key, err := filestore.Get().Upload(c.Request.Context(), fileHeader)
	if err != nil {
		log.Error("uploading resource file failed", "error", err, "resource_id", id)
		response.Fail(c, response.ErrFileStore.WithOrigin(err))
		return
	}

	updates := map[string]interface{}{"file_url": fileURL, "file_key": key}
	if err := database.DB.Model(&resource).Updates(updates).Error; err != nil {
		log.Error("saving resource file url failed", "error", err, "resource_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("resource file uploaded", "resource_id", id, "file_key", key)
	response.Success(c, gin.H{"file_url": fileURL})
}
