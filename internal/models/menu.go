package models

import "time"

// Menu -> Course -> Dish -> Ingredient is a strict containment hierarchy.
// It is a read-mostly template catalog; events reference it through the
// template product.

type Menu struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Courses []Course `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Course struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MenuID    uint   `gorm:"not null;index" json:"menu_id"`
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `json:"sort_order"`

	Dishes []Dish `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"dishes,omitempty"`
}

type Dish struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CourseID    uint   `gorm:"not null;index" json:"course_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Ingredients []Ingredient `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

type Ingredient struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DishID uint   `gorm:"not null;index" json:"dish_id"`
	Name   string `gorm:"not null" json:"name"`
}
