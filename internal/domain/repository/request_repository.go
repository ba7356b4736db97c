package repository

import (
	"context"

	"foodbank/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRequestNotFound is returned when a warehouse request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines warehouse request persistence.
type RequestRepository interface {
	// Create appends a request. The id must already be assigned.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a request by id.
	FindByID(ctx context.Context, id string) (*entity.Request, error)

	// FindByRequester returns requests made by one user, newest first.
	FindByRequester(ctx context.Context, userID string) ([]*entity.Request, error)

	// List returns all requests, newest first.
	List(ctx context.Context) ([]*entity.Request, error)

	// UpdateStatus stores a new status and the user who applied it.
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus, updatedBy string) error
}
