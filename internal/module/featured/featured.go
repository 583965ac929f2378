package featured

import (
	"glowup-diaries/internal/global/database"
	"glowup-diaries/internal/global/response"
	"glowup-diaries/internal/model"

	"github.com/gin-gonic/gin"
)

// Landing serves the landing page's promoted records: the featured
// rows of all four directories, newest first. A failed fetch degrades
// that section to empty rather than failing the page.
func Landing(c *gin.Context) {
	var events []model.Event
	if err := database.DB.Where("featured = ?", true).Order("created_at DESC").Find(&events).Error; err != nil {
		log.Error("fetching featured events failed", "error", err)
		events = nil
	}

	var opportunities []model.Opportunity
	if err := database.DB.Where("featured = ?", true).Order("created_at DESC").Find(&opportunities).Error; err != nil {
		log.Error("fetching featured opportunities failed", "error", err)
		opportunities = nil
	}

	var jobs []model.Job
	if err := database.DB.Where("featured = ?", true).Order("created_at DESC").Find(&jobs).Error; err != nil {
		log.Error("fetching featured jobs failed", "error", err)
		jobs = nil
	}

	var resources []model.Resource
	if err := database.DB.Where("featured = ?", true).Order("created_at DESC").Find(&resources).Error; err != nil {
		log.Error("fetching featured resources failed", "error", err)
		resources = nil
	}

	response.Success(c, landingPayload(events, opportunities, jobs, resources))
}

// landingPayload assembles the landing sections. Every section is a
// non-nil slice so clients always see an array, never null.
func landingPayload(events []model.Event, opportunities []model.Opportunity, jobs []model.Job, resources []model.Resource) gin.H {
	if events == nil {
		events = []model.Event{}
	}
	if opportunities == nil {
		opportunities = []model.Opportunity{}
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	return gin.H{
		"events":        events,
		"opportunities": opportunities,
		"jobs":          jobs,
		"resources":     resources,
	}
}
