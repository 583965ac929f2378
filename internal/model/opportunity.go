package model

import "time"

type Opportunity struct {
	Model
	Title       string    `gorm:"type:varchar(255);not null" json:"title" excel:"Title"`
	Description string    `gorm:"type:text" json:"description" excel:"Description"`
	Deadline    time.Time `gorm:"type:date;not null;index" json:"deadline" excel:"Deadline"`
	Eligibility string    `gorm:"type:varchar(255)" json:"eligibility" excel:"Eligibility"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category" excel:"Category"` // scholarship, fellowship, internship, grant, competition, mentorship
	IsFree      bool      `gorm:"default:false" json:"is_free" excel:"Free"`
	Featured    bool      `gorm:"default:false" json:"featured" excel:"Featured"`
}
