package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bookform/bookform-api/internal/model"
)

// LoanRepository declares the persistence capabilities for book loans.
type LoanRepository interface {
	// SaveLoan updates the row when the id exists, inserts otherwise.
	SaveLoan(ctx context.Context, loan model.Loan) error

	// GetLoans lists loans filtered by optional borrower and status.
	GetLoans(ctx context.Context, userID model.UuidOptional, status model.BoolOptional) ([]model.Loan, error)

	// GetLoanByID resolves a loan or fails with a NotFound error.
	GetLoanByID(ctx context.Context, id model.Uuid) (model.Loan, error)

	// DeleteLoan removes the row, failing with a NotFound error when
	// nothing was deleted.
	DeleteLoan(ctx context.Context, id model.Uuid) error
}

// LoanRepo is the MySQL adapter for LoanRepository.
type LoanRepo struct{ DB *sql.DB }

func NewLoanRepo(db *sql.DB) *LoanRepo { return &LoanRepo{DB: db} }

const loanColumns = "id, user_id, book, status"

// SaveLoan upserts the loan row.
func (r *LoanRepo) SaveLoan(ctx context.Context, loan model.Loan) error {
	p := loan.Primitives()

	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM loans WHERE id=? LIMIT 1", p.ID).Scan(&exists)
	switch {
	case err == nil:
		_, err = r.DB.ExecContext(ctx,
			"UPDATE loans SET user_id=?, book=?, status=? WHERE id=?",
			p.UserID, p.Book, p.Status, p.ID)
		return err
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO loans (id, user_id, book, status) VALUES (?,?,?,?)",
		p.ID, p.UserID, p.Book, p.Status)
	return err
}

// GetLoans lists loans with the optional filters applied.
func (r *LoanRepo) GetLoans(ctx context.Context, userID model.UuidOptional, status model.BoolOptional) ([]model.Loan, error) {
	q := "SELECT " + loanColumns + " FROM loans WHERE 1=1"
	var args []interface{}
	if userID.Present() {
		q += " AND user_id=?"
		args = append(args, userID.Value())
	}
	if status.Present() {
		q += " AND status=?"
		args = append(args, status.Value())
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		var p model.LoanPrimitives
		if err := rows.Scan(&p.ID, &p.UserID, &p.Book, &p.Status); err != nil {
			return nil, err
		}
		l, err := model.LoanFromPrimitives(p)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// GetLoanByID fetches a loan by id.
func (r *LoanRepo) GetLoanByID(ctx context.Context, id model.Uuid) (model.Loan, error) {
	var p model.LoanPrimitives
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+loanColumns+" FROM loans WHERE id=? LIMIT 1",
		id.Value()).Scan(&p.ID, &p.UserID, &p.Book, &p.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, model.NewNotFoundError("préstamo no encontrado")
	}
	if err != nil {
		return model.Loan{}, err
	}
	return model.LoanFromPrimitives(p)
}

// DeleteLoan removes the loan row.
func (r *LoanRepo) DeleteLoan(ctx context.Context, id model.Uuid) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM loans WHERE id=?", id.Value())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.NewNotFoundError("préstamo no encontrado")
	}
	return nil
}
