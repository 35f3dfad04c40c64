package repository

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Todo struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:text;not null"`
	IsCompleted bool   `gorm:"not null;default:false"`
	UserID      uint64 `gorm:"not null;index"`
	User        *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
