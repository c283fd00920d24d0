package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/calchub/calchub/pkg/currency"
	"github.com/calchub/calchub/pkg/datetime"
	"github.com/calchub/calchub/pkg/finance"
	"github.com/calchub/calchub/pkg/format"
	"github.com/calchub/calchub/pkg/health"
	"github.com/calchub/calchub/pkg/percent"
	"github.com/calchub/calchub/pkg/pregnancy"
	"github.com/calchub/calchub/pkg/tax"
)

// resolveCurrency maps an optional request currency code onto the registry.
// An empty code falls back to the endpoint's default.
func resolveCurrency(code, fallback string) (currency.Currency, error) {
	if code == "" {
		code = fallback
	}
	c, err := currency.Lookup(code)
	if err != nil {
		return currency.Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return c, nil
}

type sipRequest struct {
	finance.SIPInput
	Currency string `json:"currency,omitempty"`
}

type sipResponse struct {
	finance.SIPResult
	Display sipDisplay `json:"display"`
}

type sipDisplay struct {
	Invested    string `json:"invested"`
	Returns     string `json:"returns"`
	FutureValue string `json:"futureValue"`
}

func (h *handler) handleSIP(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleSIP", func(body []byte) (interface{}, error) {
		var req sipRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		c, err := resolveCurrency(req.Currency, "INR")
		if err != nil {
			return nil, err
		}

		result, err := finance.CalculateSIP(req.SIPInput)
		if err != nil {
			return nil, err
		}

		// SIP figures are whole units, so the display drops decimals.
		return sipResponse{
			SIPResult: result,
			Display: sipDisplay{
				Invested:    format.WholeAmount(c, result.Invested),
				Returns:     format.WholeAmount(c, result.Returns),
				FutureValue: format.WholeAmount(c, result.FutureValue),
			},
		}, nil
	})
}

type mortgageRequest struct {
	finance.MortgageInput
	Currency string `json:"currency,omitempty"`
}

type mortgageResponse struct {
	finance.MortgageResult
	Display mortgageDisplay `json:"display"`
}

type mortgageDisplay struct {
	Principal      string `json:"principal"`
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	TotalInterest  string `json:"totalInterest"`
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleMortgage", func(body []byte) (interface{}, error) {
		var req mortgageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		c, err := resolveCurrency(req.Currency, "USD")
		if err != nil {
			return nil, err
		}

		result, err := finance.CalculateMortgage(req.MortgageInput)
		if err != nil {
			return nil, err
		}

		return mortgageResponse{
			MortgageResult: result,
			Display: mortgageDisplay{
				Principal:      format.Amount(c, result.Principal),
				MonthlyPayment: format.Amount(c, result.MonthlyPayment),
				TotalPayment:   format.Amount(c, result.TotalPayment),
				TotalInterest:  format.Amount(c, result.TotalInterest),
			},
		}, nil
	})
}

type compoundRequest struct {
	finance.CompoundInput
	Currency string `json:"currency,omitempty"`
}

type compoundResponse struct {
	finance.CompoundResult
	Display compoundDisplay `json:"display"`
}

type compoundDisplay struct {
	Amount   string `json:"amount"`
	Interest string `json:"interest"`
}

func (h *handler) handleCompound(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleCompound", func(body []byte) (interface{}, error) {
		var req compoundRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		c, err := resolveCurrency(req.Currency, "USD")
		if err != nil {
			return nil, err
		}

		result, err := finance.CalculateCompound(req.CompoundInput)
		if err != nil {
			return nil, err
		}

		return compoundResponse{
			CompoundResult: result,
			Display: compoundDisplay{
				Amount:   format.Amount(c, result.Amount),
				Interest: format.Amount(c, result.Interest),
			},
		}, nil
	})
}

type gstRequest struct {
	finance.GSTInput
	Currency string `json:"currency,omitempty"`
}

type gstResponse struct {
	finance.GSTResult
	Display gstDisplay `json:"display"`
}

type gstDisplay struct {
	Net       string `json:"net"`
	GSTAmount string `json:"gstAmount"`
	Total     string `json:"total"`
	CGST      string `json:"cgst"`
	SGST      string `json:"sgst"`
}

func (h *handler) handleGST(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleGST", func(body []byte) (interface{}, error) {
		var req gstRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		c, err := resolveCurrency(req.Currency, "INR")
		if err != nil {
			return nil, err
		}

		result, err := finance.CalculateGST(req.GSTInput)
		if err != nil {
			return nil, err
		}

		return gstResponse{
			GSTResult: result,
			Display: gstDisplay{
				Net:       format.Amount(c, result.Net),
				GSTAmount: format.Amount(c, result.GSTAmount),
				Total:     format.Amount(c, result.Total),
				CGST:      format.Amount(c, result.CGST),
				SGST:      format.Amount(c, result.SGST),
			},
		}, nil
	})
}

type discountRequest struct {
	finance.DiscountInput
	Currency string `json:"currency,omitempty"`
}

type discountResponse struct {
	finance.DiscountResult
	Display discountDisplay `json:"display"`
}

type discountDisplay struct {
	DiscountAmount string `json:"discountAmount"`
	FinalPrice     string `json:"finalPrice"`
}

func (h *handler) handleDiscount(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleDiscount", func(body []byte) (interface{}, error) {
		var req discountRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		c, err := resolveCurrency(req.Currency, "USD")
		if err != nil {
			return nil, err
		}

		result, err := finance.CalculateDiscount(req.DiscountInput)
		if err != nil {
			return nil, err
		}

		return discountResponse{
			DiscountResult: result,
			Display: discountDisplay{
				DiscountAmount: format.Amount(c, result.DiscountAmount),
				FinalPrice:     format.Amount(c, result.FinalPrice),
			},
		}, nil
	})
}

type percentageRequest struct {
	Operation percent.Operation `json:"operation"`
	A         float64           `json:"a"`
	B         float64           `json:"b"`
}

type percentageResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

func (h *handler) handlePercentage(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handlePercentage", func(body []byte) (interface{}, error) {
		var req percentageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		result, err := percent.Apply(req.Operation, req.A, req.B)
		if err != nil {
			return nil, err
		}

		return percentageResponse{
			Result:  result,
			Display: format.Number(result, 2),
		}, nil
	})
}

func (h *handler) handleBMI(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleBMI", func(body []byte) (interface{}, error) {
		var req health.BMIInput
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		result, err := health.CalculateBMI(req)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

func (h *handler) handleCalorie(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleCalorie", func(body []byte) (interface{}, error) {
		var req health.CalorieInput
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		result, err := health.CalculateCalories(req)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

type paycheckResponse struct {
	tax.PaycheckResult
	Display paycheckDisplay `json:"display"`
}

type paycheckDisplay struct {
	Tax             string `json:"tax"`
	TakeHome        string `json:"takeHome"`
	MonthlyTakeHome string `json:"monthlyTakeHome"`
}

func (h *handler) handlePaycheck(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handlePaycheck", func(body []byte) (interface{}, error) {
		var req tax.PaycheckInput
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		// Indian income tax is always denominated in rupees.
		inr, err := currency.Lookup("INR")
		if err != nil {
			return nil, err
		}

		result, err := tax.CalculatePaycheck(req)
		if err != nil {
			return nil, err
		}

		return paycheckResponse{
			PaycheckResult: result,
			Display: paycheckDisplay{
				Tax:             format.WholeAmount(inr, result.Tax),
				TakeHome:        format.WholeAmount(inr, result.TakeHome),
				MonthlyTakeHome: format.WholeAmount(inr, result.MonthlyTakeHome),
			},
		}, nil
	})
}

type pregnancyRequest struct {
	Method              string `json:"method"`
	LMPDate             string `json:"lmpDate,omitempty"`
	ConceptionDate      string `json:"conceptionDate,omitempty"`
	UltrasoundDate      string `json:"ultrasoundDate,omitempty"`
	GestationalAgeWeeks int    `json:"gestationalAgeWeeks,omitempty"`
	Today               string `json:"today,omitempty"`
}

type pregnancyMilestone struct {
	Week int    `json:"week"`
	Name string `json:"name"`
	Date string `json:"date"`
}

type pregnancyResponse struct {
	DueDate       string               `json:"dueDate"`
	CurrentWeek   int                  `json:"currentWeek"`
	Trimester     int                  `json:"trimester"`
	TrimesterName string               `json:"trimesterName"`
	DaysUntilDue  int                  `json:"daysUntilDue"`
	Milestones    []pregnancyMilestone `json:"milestones"`
}

func (h *handler) handlePregnancy(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handlePregnancy", func(body []byte) (interface{}, error) {
		var req pregnancyRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}

		in := pregnancy.Input{
			Method:              pregnancy.Method(req.Method),
			GestationalAgeWeeks: req.GestationalAgeWeeks,
		}

		var err error
		if in.LMPDate, err = parseOptionalDate(req.LMPDate, "lmpDate"); err != nil {
			return nil, err
		}
		if in.ConceptionDate, err = parseOptionalDate(req.ConceptionDate, "conceptionDate"); err != nil {
			return nil, err
		}
		if in.UltrasoundDate, err = parseOptionalDate(req.UltrasoundDate, "ultrasoundDate"); err != nil {
			return nil, err
		}

		today := time.Now()
		if req.Today != "" {
			if today, err = parseOptionalDate(req.Today, "today"); err != nil {
				return nil, err
			}
		}

		result, err := pregnancy.Calculate(in, today)
		if err != nil {
			return nil, err
		}

		milestones := make([]pregnancyMilestone, 0, len(result.Milestones))
		for _, m := range result.Milestones {
			milestones = append(milestones, pregnancyMilestone{
				Week: m.Week,
				Name: m.Name,
				Date: m.Date.Format(datetime.DateLayout),
			})
		}

		return pregnancyResponse{
			DueDate:       result.DueDate.Format(datetime.DateLayout),
			CurrentWeek:   result.CurrentWeek,
			Trimester:     result.Trimester,
			TrimesterName: result.TrimesterName,
			DaysUntilDue:  result.DaysUntilDue,
			Milestones:    milestones,
		}, nil
	})
}

func parseOptionalDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(datetime.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected %s format", field, datetime.DateLayout)
	}
	return t, nil
}
