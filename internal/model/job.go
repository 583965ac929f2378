package model

import "time"

type Job struct {
	Model
	Title        string    `gorm:"type:varchar(255);not null" json:"title" excel:"Title"`
	Description  string    `gorm:"type:text" json:"description" excel:"Description"`
	Company      string    `gorm:"type:varchar(255);not null" json:"company" excel:"Company"`
	Location     string    `gorm:"type:varchar(255)" json:"location" excel:"Location"`
	JobType      string    `gorm:"type:varchar(30)" json:"job_type" excel:"Type"` // full-time, part-time, contract, internship, remote, graduate-trainee
	SalaryRange  *string   `gorm:"type:varchar(100)" json:"salary_range" excel:"Salary"`
	Deadline     time.Time `gorm:"type:date;not null;index" json:"deadline" excel:"Deadline"`
	Requirements string    `gorm:"type:text" json:"requirements" excel:"Requirements"`
	Link         string    `gorm:"type:varchar(512)" json:"link" excel:"Link"`
	Featured     bool      `gorm:"default:false" json:"featured" excel:"Featured"`
}
