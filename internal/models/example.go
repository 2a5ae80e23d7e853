package models

// Example links one barber's rendition to one hairstyle.
type Example struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID *uint   `gorm:"index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	HairstyleID *uint      `gorm:"index" json:"hairstyle_id"`
	Hairstyle   *Hairstyle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
