package models

import "time"

type Ticket struct {
	ID             int64        `json:"id"`
	TicketNumber   int64        `json:"ticketNumber"`
	Customer       string       `json:"customer"`
	Module         string       `json:"module"`
	Status         TicketStatus `json:"status"`
	FormType       string       `json:"formType"`
	Priority       string       `json:"priority"`
	Subject        string       `json:"subject"`
	TaskGivenBy    string       `json:"taskGivenBy"`
	ApprovedHours  *string      `json:"approvedHours"`
	Description    string       `json:"description"`
	AttachmentPath *string      `json:"attachmentPath,omitempty"`
	// Display string; may hold several comma-joined names.
	AssignedTo   string     `json:"assignedToUserName"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// DashboardRow is the dashboard projection of a ticket. DeliveryDate is a
// read-side display field, "N/A" when the ticket has none stored.
type DashboardRow struct {
	ID           int64        `json:"id"`
	TicketNumber int64        `json:"ticketNumber"`
	Customer     string       `json:"customer"`
	Task         string       `json:"task"`
	Priority     string       `json:"priority"`
	Status       TicketStatus `json:"status"`
	DeliveryDate string       `json:"deliveryDate"`
}
