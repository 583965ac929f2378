package opportunity

import (
	"time"

	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/listing"
	"glowup-diaries/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ListOpportunitiesReq struct {
	Search  string `form:"search" json:"search"`
	Filters string `form:"filters" json:"filters"`
}

// ListOpportunities serves the public opportunities directory, ordered
// by deadline ascending. Fetch failures degrade to an empty directory.
func ListOpportunities(c *gin.Context) {
	var req ListOpportunitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var opportunities []model.Opportunity
	if err := database.DB.Order("deadline ASC").Find(&opportunities).Error; err != nil {
		log.Error("fetching opportunities failed", "error", err)
		opportunities = nil
	}

	filters := listing.ParseFilters(req.Filters)
	log.Debug("directory query", "search", req.Search, "filters", filters.IDs())
	filtered := listing.Opportunities.Apply(opportunities, req.Search, filters, time.Now())

	response.Success(c, gin.H{
		"opportunities":  filtered,
		"total":          len(filtered),
		"filter_options": listing.Opportunities.Options,
	})
}

type OpportunityCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"` // YYYY-MM-DD
	Eligibility string `json:"eligibility"`
	Category    string `json:"category" binding:"required,oneof=scholarship fellowship internship grant competition mentorship"`
	IsFree      bool   `json:"is_free"`
	Featured    bool   `json:"featured"`
}

type OpportunityUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Eligibility *string `json:"eligibility"`
	Category    *string `json:"category"`
	IsFree      *bool   `json:"is_free"`
	Featured    *bool   `json:"featured"`
}

func CreateOpportunity(c *gin.Context) {
	var req OpportunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding create opportunity request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("deadline must be YYYY-MM-DD"))
		return
	}

	opportunity := model.Opportunity{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Eligibility: req.Eligibility,
		Category:    req.Category,
		IsFree:      req.IsFree,
		Featured:    req.Featured,
	}

	if err := database.DB.Create(&opportunity).Error; err != nil {
		log.Error("creating opportunity failed", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("opportunity created", "opportunity_id", opportunity.ID, "title", opportunity.Title)
	response.Success(c, gin.H{"opportunity_id": opportunity.ID})
}

func UpdateOpportunity(c *gin.Context) {
	id := c.Param("id")

	var req OpportunityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var opportunity model.Opportunity
	err := database.DB.Where("id = ?", id).First(&opportunity).Error
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
	if req.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("deadline must be YYYY-MM-DD"))
			return
		}
		updates["deadline"] = deadline
	}
	if req.Eligibility != nil {
		updates["eligibility"] = *req.Eligibility
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsFree != nil {
		updates["is_free"] = *req.IsFree
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&opportunity).Updates(updates).Error; err != nil {
		log.Error("updating opportunity failed", "error", err, "opportunity_id", opportunity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("opportunity updated", "opportunity_id", opportunity.ID)
	response.Success(c)
}

func DeleteOpportunity(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Where("id = ?", id).Delete(&model.Opportunity{})
	if result.Error != nil {
		log.Error("deleting opportunity failed", "error", result.Error, "opportunity_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound)
		return
	}

	log.Info("opportunity deleted", "opportunity_id", id)
	response.Success(c)
}
