package model

import "time"

// Event location types.
const (
	LocationPhysical = "physical"
	LocationOnline   = "online"
	LocationHybrid   = "hybrid"
)

type Event struct {
	Model
	Title        string    `gorm:"type:varchar(255);not null" json:"title" excel:"Title"`
	Description  string    `gorm:"type:text" json:"description" excel:"Description"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date" excel:"Date"`
	Time         string    `gorm:"type:varchar(20)" json:"time" excel:"Time"`
	Location     string    `gorm:"type:varchar(255)" json:"location" excel:"Location"`
	LocationType string    `gorm:"type:varchar(20);default:physical" json:"location_type" excel:"Location Type"` // physical, online, hybrid
	IsFree       bool      `gorm:"default:false" json:"is_free" excel:"Free"`
	Featured     bool      `gorm:"default:false" json:"featured" excel:"Featured"`
	Link         string    `gorm:"type:varchar(512)" json:"link" excel:"Link"`
}
