package event

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

// ListEventsReq holds the directory query parameters.
type ListEventsReq struct {
	Search  string `form:"search" json:"search"`   // free-text query
	Filters string `form:"filters" json:"filters"` // comma-separated filter ids
}

// ListEvents serves the public events directory. All rows are fetched
// ordered by date, then search and filters are applied in memory. A
// fetch failure degrades to an empty directory; it is logged but never
// surfaced as an error to the visitor.
func ListEvents(c *gin.Context) {
	var req ListEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var events []model.Event
	if err := database.DB.Order("date ASC").Find(&events).Error; err != nil {
		log.Error("fetching events failed", "error", err)
		events = nil
	}

	filters := listing.ParseFilters(req.Filters)
	log.Debug("directory query", "search", req.Search, "filters", filters.IDs())
	filtered := listing.Events.Apply(events, req.Search, filters, time.Now())

	response.Success(c, gin.H{
		"events":         filtered,
		"total":          len(filtered),
		"filter_options": listing.Events.Options,
	})
}

// EventCreateReq defines the create request body.
type EventCreateReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time"`
	Location     string `json:"location"`
	LocationType string `json:"location_type" binding:"omitempty,oneof=physical online hybrid"`
	IsFree       bool   `json:"is_free"`
	Featured     bool   `json:"featured"`
	Link         string `json:"link"`
}

// EventUpdateReq uses pointer fields so absent keys leave the column
// untouched.
type EventUpdateReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Location     *string `json:"location"`
	LocationType *string `json:"location_type"`
	IsFree       *bool   `json:"is_free"`
	Featured     *bool   `json:"featured"`
	Link         *string `json:"link"`
}

func CreateEvent(c *gin.Context) {
	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding create event request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("date must be YYYY-MM-DD"))
		return
	}

	locationType := req.LocationType
	if locationType == "" {
		locationType = model.LocationPhysical
	}

	event := model.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
		Location:     req.Location,
		LocationType: locationType,
		IsFree:       req.IsFree,
		Featured:     req.Featured,
		Link:         req.Link,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		log.Error("creating event failed", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("event created", "event_id", event.ID, "title", event.Title)
	response.Success(c, gin.H{"event_id": event.ID})
}

func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var req EventUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var event model.Event
	err := database.DB.Where("id = ?", id).First(&event).Error
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
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("date must be YYYY-MM-DD"))
			return
		}
		updates["date"] = date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.LocationType != nil {
		updates["location_type"] = *req.LocationType
	}
	if req.IsFree != nil {
		updates["is_free"] = *req.IsFree
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Error("updating event failed", "error", err, "event_id", event.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("event updated", "event_id", event.ID)
	response.Success(c)
}

func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Where("id = ?", id).Delete(&model.Event{})
	if result.Error != nil {
		log.Error("deleting event failed", "error", result.Error, "event_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound)
		return
	}

	log.Info("event deleted", "event_id", id)
	response.Success(c)
}
