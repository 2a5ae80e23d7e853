package models

type Barber struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null;index" json:"first_name"`
	LastName  string `gorm:"size:100;not null;index" json:"last_name"`
	Age       int    `gorm:"not null;index" json:"age"`
	Address   string `gorm:"size:255;not null;index" json:"address"`
}
