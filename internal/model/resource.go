package model

type Resource struct {
	Model
	Title       string `gorm:"type:varchar(255);not null" json:"title" excel:"Title"`
	Description string `gorm:"type:text" json:"description" excel:"Description"`
	Category    string `gorm:"type:varchar(50);not null" json:"category" excel:"Category"` // career development, study materials, templates, guides, worksheets, courses
	IsPremium   bool   `gorm:"default:false" json:"is_premium" excel:"Premium"`
	Featured    bool   `gorm:"default:false" json:"featured" excel:"Featured"`
	FileURL     string `gorm:"type:varchar(512)" json:"file_url" excel:"File URL"`
	FileKey     string `gorm:"type:varchar(512)" json:"-" excel:"-"` // object storage key, set when uploaded through the admin area
}
