package models

type Hairstyle struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null;index" json:"name"`
	Likes int    `gorm:"not null;default:0;index" json:"likes"`

	// Barber is only declared so the FK constraint gets migrated; it is never preloaded.
	BarberID *uint   `gorm:"index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
