package usecase

import (
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
)

func toSnapshotResponse(s model.ScoreSnapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		Score:        s.Score,
		RiskLevel:    s.RiskLevel.String(),
		Factors:      s.Factors.ToMap(),
		CalculatedAt: s.CalculatedAt,
	}
}

func toPendingResponses(pending []model.PendingRequest) []dto.PendingRequestResponse {
	out := make([]dto.PendingRequestResponse, len(pending))
	for i, p := range pending {
		out[i] = dto.PendingRequestResponse{
			RequestType:  string(p.RequestType),
			RequestID:    p.RequestID,
			UserID:       p.UserID,
			AccountTitle: p.AccountTitle,
			Amount:       p.Amount,
			Purpose:      p.Purpose,
			LoanID:       p.LoanID,
			CreatedAt:    p.CreatedAt,
		}
	}
	return out
}

func toEvaluationResponse(e model.Evaluation) dto.EvaluationResponse {
	breakdown := make([]dto.FactorResponse, len(e.Breakdown))
	for i, f := range e.Breakdown {
		breakdown[i] = dto.FactorResponse{
			Key:       f.Key,
			Label:     f.Label,
			Value:     f.Value,
			Weight:    f.Weight,
			MaxPoints: f.MaxPoints,
			Points:    f.Points,
		}
	}
	history := make([]dto.HistoryPointResponse, len(e.History))
	for i, h := range e.History {
		history[i] = dto.HistoryPointResponse{Date: h.Date, Score: h.Score, Event: h.Event}
	}

	return dto.EvaluationResponse{
		EvaluationID: e.ID,
		Applicant: dto.ApplicantResponse{
			ApplicantID:    e.Applicant.ApplicantID,
			UserID:         e.Applicant.UserID,
			Name:           e.Applicant.Name,
			DateOfBirth:    e.Applicant.DateOfBirth,
			Phone:          e.Applicant.Phone,
			Address:        e.Applicant.Address,
			MonthlyIncome:  e.Applicant.MonthlyIncome,
			EmploymentType: e.Applicant.EmploymentType,
		},
		Score:                e.Score,
		RiskCategory:         e.RiskLevel.Category(),
		ProbabilityOfDefault: e.ProbabilityOfDefault,
		DefaultPercentage:    e.DefaultPercentage,
		Recommendation:       string(e.Recommendation),
		Breakdown:            breakdown,
		Strengths:            nonNil(e.Strengths),
		Weaknesses:           nonNil(e.Weaknesses),
		Limits: dto.LimitsResponse{
			MaxAmount:    e.Limits.MaxAmount,
			MaxTenure:    e.Limits.MaxTenure,
			MaxAPRPct:    e.Limits.MaxAPRPct,
			RiskCategory: e.Limits.RiskCategory,
		},
		History:         history,
		PendingRequests: toPendingResponses(e.PendingRequests),
		UtilizationPct:  e.UtilizationPct,
		ScoredAt:        e.ScoredAt,
		GeneratedAt:     e.GeneratedAt,
		Notes:           e.Notes,
	}
}

func toLoanResponse(a model.Account) dto.LoanResponse {
	return dto.LoanResponse{
		AccountID:    a.ID(),
		Title:        a.Type().Title(),
		AccountType:  a.Type().String(),
		Purpose:      a.Purpose(),
		TenureMonths: a.TenureMonths(),
		CreditLimit:  a.CreditLimit(),
		Balance:      a.Balance(),
		Outstanding:  a.Balance(),
		OpenedAt:     a.OpenedAt(),
		Status:       a.Status().String(),
	}
}

func toLoanSummaryResponse(s model.LoanSummary) dto.LoanResponse {
	resp := toLoanResponse(s.Account)
	resp.Outstanding = s.Outstanding
	return resp
}

func toPaymentResponse(r model.PaymentRecord) dto.PaymentResponse {
	ob := r.Obligation
	amount := ob.AmountDue()
	if ob.AmountPaid().IsPositive() {
		amount = ob.AmountPaid()
	}
	return dto.PaymentResponse{
		PaymentID:    ob.ID(),
		AccountID:    ob.AccountID(),
		AccountTitle: r.AccountType.Title(),
		DueDate:      ob.DueDate(),
		PaidDate:     ob.PaidDate(),
		AmountDue:    ob.AmountDue(),
		AmountPaid:   ob.AmountPaid(),
		Amount:       amount,
		Status:       ob.Status().String(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
