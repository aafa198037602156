package models

type Job struct {
	BaseModel
	EmployerID  string   `gorm:"type:uuid;not null;index" json:"employer"`
	CategoryID  *string  `gorm:"type:uuid;index" json:"category"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	CompanyLogo string   `json:"company_logo"`
	Location    string   `gorm:"index" json:"location"`
	Salary      *float64 `json:"salary"`
	JobType     JobType `gorm:"type:varchar(20);default:'full_time'" json:"job_type"`
	// No column default: false must survive an insert, and GORM omits
	// zero-valued fields that carry one.
	IsActive bool `json:"is_active"`

	// Relations
	Employer     *User         `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
	Category     *Category     `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
