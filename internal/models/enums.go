package models

import "fmt"

// Role governs which operations a signed-in user may invoke.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleConsultant Role = "Consultant"
	RoleCustomer   Role = "Customer"
)

// ParseRole rejects anything outside the closed set so free-form
// strings never reach the users table.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleConsultant, RoleCustomer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusAssigned   TicketStatus = "Assigned"
	StatusInProgress TicketStatus = "In Progress"
	StatusOnHold     TicketStatus = "On Hold"
	StatusClosed     TicketStatus = "Closed"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case StatusOpen, StatusAssigned, StatusInProgress, StatusOnHold, StatusClosed:
		return TicketStatus(s), nil
	}
	return "", fmt.Errorf("unknown ticket status %q", s)
}

type LeaveType string

const (
	LeaveFullDay LeaveType = "Full Day"
	LeaveHalfDay LeaveType = "Half Day"
	LeaveSick    LeaveType = "Sick"
	LeaveCasual  LeaveType = "Casual"
)

func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(s) {
	case LeaveFullDay, LeaveHalfDay, LeaveSick, LeaveCasual:
		return LeaveType(s), nil
	}
	return "", fmt.Errorf("unknown leave type %q", s)
}
