package service

import (
	"context"
	"errors"
	"time"

	guuid "github.com/google/uuid"

	"github.com/bookform/bookform-api/internal/model"
)

// memoryUserRepo implements repository.UserRepository over maps, following
// the documented contract (upsert policy, conflict check, token rotation,
// opaque password failures). failWith, when set, makes every lookup fail
// to simulate a backend outage.
type memoryUserRepo struct {
	users     map[string]model.UserPrimitives // id -> row
	passwords map[string]string               // id -> plain password stand-in
	tokens    map[string]string               // token -> id
	removed   map[string]bool                 // id -> soft-deleted
	lastLogin map[string]time.Time            // id -> stamp
	failWith  error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:     map[string]model.UserPrimitives{},
		passwords: map[string]string{},
		tokens:    map[string]string{},
		removed:   map[string]bool{},
		lastLogin: map[string]time.Time{},
	}
}

// seed inserts a row with a known token, bypassing the contract checks.
func (r *memoryUserRepo) seed(p model.UserPrimitives, password, token string) {
	r.users[p.ID] = p
	if password != "" {
		r.passwords[p.ID] = password
	}
	if token != "" {
		r.tokens[token] = p.ID
	}
}

func (r *memoryUserRepo) SaveUser(ctx context.Context, user model.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	p := user.Primitives()
	if _, ok := r.users[p.ID]; ok {
		r.users[p.ID] = p
		return nil
	}
	for id, row := range r.users {
		if row.Email == p.Email && id != p.ID {
			return model.NewConflictError("El email ya existe")
		}
	}
	r.users[p.ID] = p
	r.tokens[guuid.NewString()] = p.ID
	return nil
}

func (r *memoryUserRepo) SaveUserPassword(ctx context.Context, id model.Uuid, password model.Name) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.passwords[id.Value()] = password.Value()
	return nil
}

func (r *memoryUserRepo) GetUsers(ctx context.Context, name, email model.NameOptional, status model.Bool) ([]model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []model.User
	for id, p := range r.users {
		if r.removed[id] || p.Status != status.Value() {
			continue
		}
		u, err := model.UserFromPrimitives(p)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *memoryUserRepo) GetUserByID(ctx context.Context, id model.Uuid) (model.User, error) {
	if r.failWith != nil {
		return model.User{}, r.failWith
	}
	p, ok := r.users[id.Value()]
	if !ok {
		return model.User{}, model.NewNotFoundError("usuario no encontrado")
	}
	return model.UserFromPrimitives(p)
}

func (r *memoryUserRepo) GetUserByEmail(ctx context.Context, email model.Name, excludeID model.UuidOptional) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for id, p := range r.users {
		if p.Email != email.Value() {
			continue
		}
		if excludeID.Present() && id == excludeID.Value() {
			continue
		}
		u, err := model.UserFromPrimitives(p)
		if err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepo) GetUserByAccessToken(ctx context.Context, token model.Uuid) (model.User, error) {
	if r.failWith != nil {
		return model.User{}, r.failWith
	}
	id, ok := r.tokens[token.Value()]
	if !ok {
		return model.User{}, model.NewNotFoundError("token no encontrado")
	}
	p := r.users[id]
	if r.removed[id] || !p.Status {
		return model.User{}, model.NewNotFoundError("token no encontrado")
	}
	return model.UserFromPrimitives(p)
}

func (r *memoryUserRepo) CreateAccessToken(ctx context.Context, id model.Uuid) (model.Uuid, error) {
	if r.failWith != nil {
		return model.Uuid{}, r.failWith
	}
	for tok, owner := range r.tokens {
		if owner == id.Value() {
			delete(r.tokens, tok)
		}
	}
	token, err := model.NewUuid(guuid.NewString())
	if err != nil {
		return model.Uuid{}, err
	}
	r.tokens[token.Value()] = id.Value()
	return token, nil
}

func (r *memoryUserRepo) UpdateLastLogin(ctx context.Context, id model.Uuid) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.lastLogin[id.Value()] = time.Now().UTC()
	return nil
}

func (r *memoryUserRepo) ActiveRemoveUser(ctx context.Context, id model.Uuid) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.removed[id.Value()] = true
	return nil
}

func (r *memoryUserRepo) CheckPassword(ctx context.Context, id model.Uuid, plain model.Name) error {
	if r.failWith != nil {
		return model.NewCredentialsError()
	}
	stored, ok := r.passwords[id.Value()]
	if !ok || stored == "" || stored != plain.Value() {
		return model.NewCredentialsError()
	}
	return nil
}

// tokenFor returns the token currently mapped to id, or "".
func (r *memoryUserRepo) tokenFor(id string) string {
	for tok, owner := range r.tokens {
		if owner == id {
			return tok
		}
	}
	return ""
}

// memoryLoanRepo implements repository.LoanRepository over a map and
// counts mutations so tests can assert fail-closed behavior.
type memoryLoanRepo struct {
	loans       map[string]model.LoanPrimitives
	deleteCalls int
	failWith    error
}

func newMemoryLoanRepo() *memoryLoanRepo {
	return &memoryLoanRepo{loans: map[string]model.LoanPrimitives{}}
}

func (r *memoryLoanRepo) SaveLoan(ctx context.Context, loan model.Loan) error {
	if r.failWith != nil {
		return r.failWith
	}
	p := loan.Primitives()
	r.loans[p.ID] = p
	return nil
}

func (r *memoryLoanRepo) GetLoans(ctx context.Context, userID model.UuidOptional, status model.BoolOptional) ([]model.Loan, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []model.Loan
	for _, p := range r.loans {
		if userID.Present() && p.UserID != userID.Value() {
			continue
		}
		if status.Present() && p.Status != status.Value() {
			continue
		}
		l, err := model.LoanFromPrimitives(p)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *memoryLoanRepo) GetLoanByID(ctx context.Context, id model.Uuid) (model.Loan, error) {
	if r.failWith != nil {
		return model.Loan{}, r.failWith
	}
	p, ok := r.loans[id.Value()]
	if !ok {
		return model.Loan{}, model.NewNotFoundError("préstamo no encontrado")
	}
	return model.LoanFromPrimitives(p)
}

func (r *memoryLoanRepo) DeleteLoan(ctx context.Context, id model.Uuid) error {
	r.deleteCalls++
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.loans[id.Value()]; !ok {
		return model.NewNotFoundError("préstamo no encontrado")
	}
	delete(r.loans, id.Value())
	return nil
}

var errBackend = errors.New("connection reset by peer")
