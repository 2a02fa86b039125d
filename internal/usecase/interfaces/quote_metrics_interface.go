package interfaces

import "cotizador_taller/internal/domain/entities"

type IQuoteMetrics interface {
	QuoteResolved(milestoneType entities.MilestoneType, dropped []entities.DroppedReference)
}
