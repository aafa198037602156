package models

type UserRole string
type JobType string
type ApplicationStatus string

const (
	UserRoleEmployer  UserRole = "employer"
	UserRoleApplicant UserRole = "applicant"
	UserRoleAdmin     UserRole = "admin"

	JobTypeFullTime JobType = "full_time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
