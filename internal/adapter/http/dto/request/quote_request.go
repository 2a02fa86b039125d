package request

import (
	"strings"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"
)

// QuoteRequest is the advisor selection sent by the quoting screen.
type QuoteRequest struct {
	LineID       string   `json:"lineId" binding:"required"`
	MilestoneID  string   `json:"milestoneId" binding:"required"`
	ServiceType  string   `json:"serviceType"`
	Additionals  []string `json:"additionals"`
	CrossSellIDs []string `json:"crossSellIds"`
}

func (r QuoteRequest) ToUseCase() usecase.QuoteRequest {
	return usecase.QuoteRequest{
		LineID:       strings.TrimSpace(r.LineID),
		MilestoneID:  strings.TrimSpace(r.MilestoneID),
		ServiceType:  entities.ServiceType(strings.TrimSpace(r.ServiceType)),
		Additionals:  r.Additionals,
		CrossSellIDs: r.CrossSellIDs,
	}
}
