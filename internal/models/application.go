package models

type Application struct {
	BaseModel
	// One application per applicant per job. The composite unique index is
	// the authoritative guard; concurrent inserts race past any pre-check.
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant"`
	Resume      string            `gorm:"not null" json:"resume"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Applicant *User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`
}
