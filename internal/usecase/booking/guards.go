package booking

import (
	"context"

	"github.com/queueworks/queue-booking-api/internal/audit"
	domain "github.com/queueworks/queue-booking-api/internal/domain/booking"
	"github.com/queueworks/queue-booking-api/internal/httperr"
)

// Branch and user deletion are guarded by a referential pre-check: nothing
// referenced by a booking may go away, and the check happens before any
// store mutation.

type DeleteBranch struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBranch(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBranch {
	return &DeleteBranch{repo: repo, audit: audit}
}

func (uc *DeleteBranch) Execute(
	ctx context.Context,
	actorID string,
	branchID string,
) error {

	if _, err := uc.repo.GetBranch(ctx, branchID); err != nil {
		return httperr.ErrBusiness("branch_not_found")
	}

	count, err := uc.repo.CountBookingsForBranch(ctx, branchID)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("branch_has_bookings")
	}

	if err := uc.repo.DeleteBranch(ctx, branchID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "branch_deleted",
		Entity:   "branch",
		EntityID: &branchID,
	})

	return nil
}

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	actorID string,
	userID string,
) error {

	if _, err := uc.repo.GetUser(ctx, userID); err != nil {
		return httperr.ErrBusiness("user_not_found")
	}

	count, err := uc.repo.CountBookingsForUser(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("user_has_bookings")
	}

	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
	})

	return nil
}
