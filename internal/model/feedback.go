package model

type Feedback struct {
	Model
	Name    string `gorm:"type:varchar(100);not null" json:"name" excel:"Name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email" excel:"Email"`
	Message string `gorm:"type:text;not null" json:"message" excel:"Message"`
}
