package models

type Category struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	// Deleting a category must not delete its jobs; the FK nulls them out.
	Jobs []Job `gorm:"foreignKey:CategoryID" json:"-"`
}
