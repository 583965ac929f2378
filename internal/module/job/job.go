package job

import (
	"strings"
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

type ListJobsReq struct {
	Search  string `form:"search" json:"search"`
	Filters string `form:"filters" json:"filters"`
	JobType string `form:"job_type" json:"job_type"` // optional exact type filter from the type tabs
}

// ListJobs serves the public jobs directory, ordered by deadline
// ascending. Besides search and the filter menu, the type tabs send an
// exact job_type match. Fetch failures degrade to an empty directory.
func ListJobs(c *gin.Context) {
	var req ListJobsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var jobs []model.Job
	if err := database.DB.Order("deadline ASC").Find(&jobs).Error; err != nil {
		log.Error("fetching jobs failed", "error", err)
		jobs = nil
	}

	filters := listing.ParseFilters(req.Filters)
	log.Debug("directory query", "search", req.Search, "filters", filters.IDs())
	filtered := listing.Jobs.Apply(jobs, req.Search, filters, time.Now())

	if req.JobType != "" {
		byType := filtered[:0]
		for _, j := range filtered {
			if strings.EqualFold(j.JobType, req.JobType) {
				byType = append(byType, j)
			}
		}
		filtered = byType
	}

	response.Success(c, gin.H{
		"jobs":           filtered,
		"total":          len(filtered),
		"filter_options": listing.Jobs.Options,
	})
}

type JobCreateReq struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Company      string  `json:"company" binding:"required"`
	Location     string  `json:"location"`
	JobType      string  `json:"job_type" binding:"omitempty,oneof=full-time part-time contract internship remote graduate-trainee"`
	SalaryRange  *string `json:"salary_range"`
	Deadline     string  `json:"deadline" binding:"required"` // YYYY-MM-DD
	Requirements string  `json:"requirements"`
	Link         string  `json:"link"`
	Featured     bool    `json:"featured"`
}

type JobUpdateReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	JobType      *string `json:"job_type"`
	SalaryRange  *string `json:"salary_range"`
	Deadline     *string `json:"deadline"`
	Requirements *string `json:"requirements"`
	Link         *string `json:"link"`
	Featured     *bool   `json:"featured"`
}

func CreateJob(c *gin.Context) {
	var req JobCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("binding create job request failed", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("deadline must be YYYY-MM-DD"))
		return
	}

	job := model.Job{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Deadline:     deadline,
		Requirements: req.Requirements,
		Link:         req.Link,
		Featured:     req.Featured,
	}

	if err := database.DB.Create(&job).Error; err != nil {
		log.Error("creating job failed", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("job created", "job_id", job.ID, "title", job.Title, "company", job.Company)
	response.Success(c, gin.H{"job_id": job.ID})
}

func UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var req JobUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var job model.Job
	err := database.DB.Where("id = ?", id).First(&job).Error
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
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.JobType != nil {
		updates["job_type"] = *req.JobType
	}
	if req.SalaryRange != nil {
		updates["salary_range"] = *req.SalaryRange
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("deadline must be YYYY-MM-DD"))
			return
		}
		updates["deadline"] = deadline
	}
	if req.Requirements != nil {
		updates["requirements"] = *req.Requirements
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	if len(updates) == 0 {
		response.Success(c)
		return
	}

	if err := database.DB.Model(&job).Updates(updates).Error; err != nil {
		log.Error("updating job failed", "error", err, "job_id", job.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("job updated", "job_id", job.ID)
	response.Success(c)
}

func DeleteJob(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Where("id = ?", id).Delete(&model.Job{})
	if result.Error != nil {
		log.Error("deleting job failed", "error", result.Error, "job_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound)
		return
	}

	log.Info("job deleted", "job_id", id)
	response.Success(c)
}

