package entity

import (
	"slices"
	"time"
)

// RequestStatus is the warehouse request lifecycle.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusReady     RequestStatus = "ready"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// requestTransitions is the full transition table. Statuses absent as keys
// are terminal.
//
//nolint:gochecknoglobals
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusCancelled},
	RequestStatusApproved: {RequestStatusReady, RequestStatusCancelled},
	RequestStatusReady:    {RequestStatusCompleted},
}

// IsValid checks if the RequestStatus is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusReady,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	_, ok := requestTransitions[s]

	return !ok
}

// CanTransitionTo reports whether s -> next is in the transition table.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return slices.Contains(requestTransitions[s], next)
}

// FoodTypes lists the accepted request categories in display order.
//
//nolint:gochecknoglobals
var FoodTypes = []string{
	"米・穀物",
	"缶詰・レトルト",
	"調味料・油",
	"冷凍食品",
	"野菜・果物",
	"パン・菓子",
	"その他",
}

// Request is a warehouse food request from a partner organisation.
type Request struct {
	ID               string        `json:"request_id"`
	OrganizationName string        `json:"organization_name"`
	ContactPerson    string        `json:"contact_person"`
	ContactPhone     string        `json:"contact_phone"`
	ContactEmail     string        `json:"contact_email"`
	BeneficiaryCount int           `json:"beneficiary_count"`
	FoodType         string        `json:"food_type"`
	QuantityNeeded   string        `json:"quantity_needed"`
	PickupDate       time.Time     `json:"pickup_date"`
	PickupTime       string        `json:"pickup_time"`
	UsagePurpose     string        `json:"usage_purpose"`
	SpecialNotes     string        `json:"special_notes"`
	RequesterUserID  string        `json:"requester_user_id"`
	RequesterName    string        `json:"requester_name"`
	Platform         string        `json:"platform"`
	Status           RequestStatus `json:"status"`
	UpdatedBy        string        `json:"updated_by"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// WarehouseDashboard aggregates the request table.
type WarehouseDashboard struct {
	TotalRequests      int                   `json:"totalRequests"`
	PendingRequests    int                   `json:"pendingRequests"`
	CompletedRequests  int                   `json:"completedRequests"`
	TotalBeneficiaries int                   `json:"totalBeneficiaries"`
	StatusCounts       map[RequestStatus]int `json:"statusCounts"`
	CategoryCounts     map[string]int        `json:"categoryCounts"`
}
