package http

import (
	"errors"
	"net/http"
	"strings"

	loanDomain "agrifund-backend/internal/domain/loan"
	userDomain "agrifund-backend/internal/domain/user"
	"agrifund-backend/internal/usecase/identity"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the acting identity. The core treats identity as
// caller-supplied input; this header is how the (out-of-scope) session
// layer supplies it.
const HeaderUserID = "Ax-User-Id"

// actorFrom resolves the Ax-User-Id header to a stored user, or nil when
// the header is absent or unknown.
func actorFrom(c echo.Context, ident *identity.Usecase) (*userDomain.User, error) {
	userID := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
	if userID == "" {
		return nil, nil
	}
	return ident.Find(c.Request().Context(), userID)
}

// writeDomainError maps core error kinds onto HTTP statuses. The core
// returns structured kinds, not user-facing strings; rendering belongs
// here.
func writeDomainError(c echo.Context, err error) error {
	var capErr *loanDomain.CapacityError
	switch {
	case errors.Is(err, userDomain.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
	case errors.Is(err, userDomain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, loanDomain.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "operation not permitted for this role"})
	case errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan request not found"})
	case errors.As(err, &capErr):
		remaining := capErr.Remaining
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:        "investment exceeds remaining capacity",
			MaxRemaining: &remaining,
		})
	case errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidProgress),
		errors.Is(err, loanDomain.ErrInvalidInput),
		errors.Is(err, userDomain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
