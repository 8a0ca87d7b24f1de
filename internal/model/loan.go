package model

// LoanPrimitives is the plain-data shape of a loan.
type LoanPrimitives struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Book   string `json:"book"`
	Status bool   `json:"status"`
}

// Loan represents a book lent to a user. Status is true while the loan
// is open and false once the book has been returned.
type Loan struct {
	id     Uuid
	userID Uuid
	book   Name
	status Bool
}

// NewLoan assembles a Loan from already validated value objects.
func NewLoan(id Uuid, userID Uuid, book Name, status Bool) Loan {
	return Loan{id: id, userID: userID, book: book, status: status}
}

// LoanFromPrimitives validates each field and assembles the aggregate.
func LoanFromPrimitives(data LoanPrimitives) (Loan, error) {
	id, err := NewUuid(data.ID)
	if err != nil {
		return Loan{}, err
	}
	userID, err := NewUuid(data.UserID)
	if err != nil {
		return Loan{}, err
	}
	book, err := NewName(data.Book)
	if err != nil {
		return Loan{}, err
	}
	return Loan{id: id, userID: userID, book: book, status: NewBool(data.Status)}, nil
}

// Primitives projects the aggregate back to plain data.
func (l Loan) Primitives() LoanPrimitives {
	return LoanPrimitives{
		ID:     l.id.Value(),
		UserID: l.userID.Value(),
		Book:   l.book.Value(),
		Status: l.status.Value(),
	}
}

func (l Loan) ID() Uuid     { return l.id }
func (l Loan) UserID() Uuid { return l.userID }
func (l Loan) Book() Name   { return l.book }
func (l Loan) Status() Bool { return l.status }
