package service

import (
	"context"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/queue"
	"github.com/bookform/bookform-api/internal/repository"
	queuepublisher "github.com/bookform/bookform-api/internal/service/queue_publisher"
)

// DeleteLoanService removes a loan. The handler resolves the caller
// through AuthService.CheckAccessToken before invoking Execute; when
// authentication fails the mutation never runs.
type DeleteLoanService struct {
	loans repository.LoanRepository
}

func NewDeleteLoanService(loans repository.LoanRepository) *DeleteLoanService {
	return &DeleteLoanService{loans: loans}
}

// Execute deletes the loan and publishes a loan.deleted event. The actor
// is the authenticated user on whose behalf the deletion runs; it is only
// used for the event payload.
func (s *DeleteLoanService) Execute(ctx context.Context, id model.Uuid, actor model.User) error {
	loan, err := s.loans.GetLoanByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.loans.DeleteLoan(ctx, id); err != nil {
		return err
	}

	p := loan.Primitives()
	// Event delivery is best-effort; a broker outage must not fail the
	// request that already committed.
	_ = queuepublisher.PublishLoanDeleted(ctx, queue.LoanDeletedEvent{
		LoanID:    p.ID,
		UserID:    p.UserID,
		Book:      p.Book,
		DeletedBy: actor.ID().Value(),
	})
	return nil
}
