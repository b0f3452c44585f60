package http

import (
	"net/http"

	"agrifund-backend/internal/usecase/identity"
	loanUC "agrifund-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	uc    *loanUC.Usecase
	ident *identity.Usecase
}

func NewLoanHandler(uc *loanUC.Usecase, ident *identity.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, ident: ident}
}

type submitLoanReq struct {
	FarmSize              float64 `json:"farm_size"               validate:"required,gt=0"`
	Location              string  `json:"location"                validate:"required"`
	CropType              string  `json:"crop_type"               validate:"required"`
	TargetAmount          float64 `json:"target_amount"           validate:"required,gt=0,dec2"`
	Purpose               string  `json:"purpose"                 validate:"required"`
	RepaymentPeriodMonths int     `json:"repayment_period_months" validate:"required,gt=0"`
	ExperienceYears       int     `json:"experience_years"        validate:"gte=0"`
	PreviousLoans         string  `json:"previous_loans"`
}

type investReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

type repaymentReq struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.SubmitRequest(c.Request().Context(), actor, loanUC.SubmitInput{
		FarmSize:              req.FarmSize,
		Location:              req.Location,
		CropType:              req.CropType,
		TargetAmount:          req.TargetAmount,
		Purpose:               req.Purpose,
		RepaymentPeriodMonths: req.RepaymentPeriodMonths,
		ExperienceYears:       req.ExperienceYears,
		PreviousLoans:         req.PreviousLoans,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	ctx := c.Request().Context()
	if farmerID := c.QueryParam("farmer_id"); farmerID != "" {
		loans, err := h.uc.ListByFarmer(ctx, farmerID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, loans)
	}
	if c.QueryParam("open") == "true" {
		loans, err := h.uc.ListOpen(ctx)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, loans)
	}
	loans, err := h.uc.List(ctx)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) Invest(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	inv, err := h.uc.Invest(c.Request().Context(), actor, c.Param("loan_id"), req.Amount)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *LoanHandler) UpdateRepayment(c echo.Context) error {
	actor, err := actorFrom(c, h.ident)
	if err != nil {
		return writeDomainError(c, err)
	}
	var req repaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.UpdateRepayment(c.Request().Context(), actor, c.Param("loan_id"), req.Progress)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}
