package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookform/bookform-api/internal/model"
	"github.com/bookform/bookform-api/internal/service"
)

const (
	testToken = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	testUser  = "0e37df36-f698-11e6-8dd4-cb9ced3df976"
	testLoan  = "9f1b5c1e-2d49-4c8e-9a93-1a2b3c4d5e6f"
)

// stubUserRepo resolves exactly one token to one active user.
type stubUserRepo struct {
	token string
	user  model.UserPrimitives
}

func (s *stubUserRepo) GetUserByAccessToken(ctx context.Context, token model.Uuid) (model.User, error) {
	if token.Value() != s.token {
		return model.User{}, model.NewNotFoundError("token no encontrado")
	}
	return model.UserFromPrimitives(s.user)
}

func (s *stubUserRepo) SaveUser(ctx context.Context, user model.User) error { return nil }
func (s *stubUserRepo) SaveUserPassword(ctx context.Context, id model.Uuid, password model.Name) error {
	return nil
}
func (s *stubUserRepo) GetUsers(ctx context.Context, name, email model.NameOptional, status model.Bool) ([]model.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetUserByID(ctx context.Context, id model.Uuid) (model.User, error) {
	return model.User{}, model.NewNotFoundError("usuario no encontrado")
}
func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email model.Name, excludeID model.UuidOptional) (*model.User, error) {
	return nil, nil
}
func (s *stubUserRepo) CreateAccessToken(ctx context.Context, id model.Uuid) (model.Uuid, error) {
	return model.Uuid{}, nil
}
func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id model.Uuid) error   { return nil }
func (s *stubUserRepo) ActiveRemoveUser(ctx context.Context, id model.Uuid) error  { return nil }
func (s *stubUserRepo) CheckPassword(ctx context.Context, id model.Uuid, plain model.Name) error {
	return model.NewCredentialsError()
}

// stubLoanRepo records whether DeleteLoan was ever invoked.
type stubLoanRepo struct {
	loans       map[string]model.LoanPrimitives
	deleteCalls int
}

func (s *stubLoanRepo) SaveLoan(ctx context.Context, loan model.Loan) error { return nil }
func (s *stubLoanRepo) GetLoans(ctx context.Context, userID model.UuidOptional, status model.BoolOptional) ([]model.Loan, error) {
	return nil, nil
}
func (s *stubLoanRepo) GetLoanByID(ctx context.Context, id model.Uuid) (model.Loan, error) {
	p, ok := s.loans[id.Value()]
	if !ok {
		return model.Loan{}, model.NewNotFoundError("préstamo no encontrado")
	}
	return model.LoanFromPrimitives(p)
}
func (s *stubLoanRepo) DeleteLoan(ctx context.Context, id model.Uuid) error {
	s.deleteCalls++
	delete(s.loans, id.Value())
	return nil
}

func newLoanHandler() (*LoanHandler, *stubLoanRepo) {
	users := &stubUserRepo{
		token: testToken,
		user: model.UserPrimitives{
			ID:     testUser,
			Name:   "Laura",
			Status: true,
			Email:  "laura@bookform.test",
		},
	}
	loans := &stubLoanRepo{loans: map[string]model.LoanPrimitives{
		testLoan: {ID: testLoan, UserID: testUser, Book: "Rayuela", Status: true},
	}}
	h := NewLoanHandler(
		service.NewAuthService(users),
		service.NewLoanService(loans, users),
		service.NewDeleteLoanService(loans),
	)
	return h, loans
}

func deleteLoanRequest(t *testing.T, h *LoanHandler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/loans/"+testLoan, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/loans/:id")
	c.SetParamNames("id")
	c.SetParamValues(testLoan)
	require.NoError(t, h.HandleDelete(c))
	return rec
}

func TestHandleDeleteWithValidToken(t *testing.T) {
	h, loans := newLoanHandler()

	rec := deleteLoanRequest(t, h, "Bearer "+testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, loans.deleteCalls)
	assert.Empty(t, loans.loans)
}

// When the header does not resolve to an authenticated user the loan must
// survive: the repository mutation never runs and the response carries the
// uniform authorization message regardless of the failure cause.
func TestHandleDeleteFailsClosed(t *testing.T) {
	for _, header := range []string{
		"",
		"Token abc",
		"Bearer unknown-token",
		"Bearer 8d9f66ad-5717-4562-b3fc-2c963f66afa6",
	} {
		t.Run("header "+header, func(t *testing.T) {
			h, loans := newLoanHandler()

			rec := deleteLoanRequest(t, h, header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), model.AuthFailMessage)
			assert.Zero(t, loans.deleteCalls, "mutation must not run")
			assert.Len(t, loans.loans, 1)
		})
	}
}
