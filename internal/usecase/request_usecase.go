package usecase

import (
	"context"

	"foodbank/internal/domain/entity"
)

// CreateRequestInput is the warehouse request form.
type CreateRequestInput struct {
	OrganizationName string `json:"organization_name"`
	ContactPerson    string `json:"contact_person"`
	ContactPhone     string `json:"contact_phone"`
	ContactEmail     string `json:"contact_email"`
	BeneficiaryCount string `json:"beneficiary_count"`
	FoodType         string `json:"food_type"`
	QuantityNeeded   string `json:"quantity_needed"`
	PickupDate       string `json:"pickup_date"`
	PickupTime       string `json:"pickup_time"`
	UsagePurpose     string `json:"usage_purpose"`
	SpecialNotes     string `json:"special_notes"`
	Platform         string `json:"platform"`
}

// RequestUsecase manages warehouse requests and their status machine.
type RequestUsecase interface {
	// CreateRequest stores a pending request with an RYYMMDDNNN id
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.Request, error)

	// GetRequests returns the caller's requests, or every request for admins
	GetRequests(ctx context.Context, userID string, isAdmin bool) ([]*entity.Request, error)

	// GetRequestDetails retrieves a request by id
	GetRequestDetails(ctx context.Context, id string) (*entity.Request, error)

	// UpdateRequestStatus applies one state machine transition
	UpdateRequestStatus(ctx context.Context, id, status string) (*entity.Request, error)

	// GetWarehouseDashboard aggregates the request table
	GetWarehouseDashboard(ctx context.Context) (*entity.WarehouseDashboard, error)
}
