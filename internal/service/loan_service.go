package service

import (
	"context"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/repository"
)

// LoanService covers loan creation and listing.
type LoanService struct {
	loans repository.LoanRepository
	users repository.UserRepository
}

func NewLoanService(loans repository.LoanRepository, users repository.UserRepository) *LoanService {
	return &LoanService{loans: loans, users: users}
}

// Create saves a loan after checking the borrower exists.
func (s *LoanService) Create(ctx context.Context, loan model.Loan) error {
	if _, err := s.users.GetUserByID(ctx, loan.UserID()); err != nil {
		return err
	}
	return s.loans.SaveLoan(ctx, loan)
}

// List returns loans matching the optional borrower/status filters.
func (s *LoanService) List(ctx context.Context, userID model.UuidOptional, status model.BoolOptional) ([]model.LoanPrimitives, error) {
	loans, err := s.loans.GetLoans(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	out := make([]model.LoanPrimitives, 0, len(loans))
	for _, l := range loans {
		out = append(out, l.Primitives())
	}
	return out, nil
}
