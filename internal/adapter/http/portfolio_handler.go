package http

import (
	"net/http"

	loanDomain "agrifund-backend/internal/domain/loan"
	userDomain "agrifund-backend/internal/domain/user"
	"agrifund-backend/internal/report"
	"agrifund-backend/internal/usecase/identity"
	loanUC "agrifund-backend/internal/usecase/loan"
	portfolioUC "agrifund-backend/internal/usecase/portfolio"

	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	portfolios *portfolioUC.Usecase
	loans      *loanUC.Usecase
	ident      *identity.Usecase
}

func NewPortfolioHandler(p *portfolioUC.Usecase, l *loanUC.Usecase, ident *identity.Usecase) *PortfolioHandler {
	return &PortfolioHandler{portfolios: p, loans: l, ident: ident}
}

// GetPortfolio returns the acting investor's denormalized entries.
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	if actor == nil || actor.Role != userDomain.RoleInvestor {
		return writeDomainError(c, loanDomain.ErrUnauthorized)
	}
	entries, err := h.portfolios.Get(c.Request().Context(), actor.ID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ImpactStats summarizes the whole marketplace for display.
func (h *PortfolioHandler) ImpactStats(c echo.Context) error {
	loans, err := h.loans.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report.Impact(loans))
}

// InvestorStats summarizes the acting investor's portfolio.
func (h *PortfolioHandler) InvestorStats(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	if actor == nil || actor.Role != userDomain.RoleInvestor {
		return writeDomainError(c, loanDomain.ErrUnauthorized)
	}
	entries, err := h.portfolios.Get(c.Request().Context(), actor.ID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report.Investor(entries))
}

// FarmerStats summarizes the acting farmer's loan requests.
func (h *PortfolioHandler) FarmerStats(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	if actor == nil || actor.Role != userDomain.RoleFarmer {
		return writeDomainError(c, loanDomain.ErrUnauthorized)
	}
	loans, err := h.loans.ListByFarmer(c.Request().Context(), actor.ID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report.Farmer(loans))
}
