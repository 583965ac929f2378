package model

type User struct {
	Model
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Name     string `gorm:"type:varchar(100)" json:"name"`
}

// AdminUser is the admin membership list. A User may exist without a
// row here; only members pass the admin gate.
type AdminUser struct {
	Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user"`
}
