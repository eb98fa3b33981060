package models

import "time"

// User mirrors the users table. Optional HR attributes are pointers so an
// empty form value clears the column instead of storing "".
type User struct {
	ID                      int64      `json:"id"`
	UserType                Role       `json:"userType"`
	UserName                string     `json:"userName"`
	Name                    string     `json:"name"`
	Mobile                  *string    `json:"mobile"`
	OfficeEmail             string     `json:"officeEmail"`
	Position                *string    `json:"position"`
	JoiningDate             *time.Time `json:"joiningDate"`
	Status                  *string    `json:"status"`
	ConsultantType          *string    `json:"consultantType"`
	ReportingManager        *string    `json:"reportingManager"`
	AlternateMobile         *string    `json:"alternateMobile"`
	WorksnapCredentials     *string    `json:"worksnapCredentials"`
	TimesheetNotification   *string    `json:"timesheetNotification"`
	DateOfBirth             *time.Time `json:"dateOfBirth"`
	AnniversaryDate         *time.Time `json:"anniversaryDate"`
	SAPServerCredentials    *string    `json:"sapServerCredentials"`
	AllowBackdatedTimesheet *string    `json:"allowBackdatedTimesheet"`
}

// Principal is the authenticated identity bound to a request.
type Principal struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// UserRef is the slim projection used by dropdowns: reporting managers,
// ticket assignees, customer pickers.
type UserRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	UserType    Role   `json:"userType,omitempty"`
	OfficeEmail string `json:"officeEmail,omitempty"`
}
