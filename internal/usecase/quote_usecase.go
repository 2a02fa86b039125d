package usecase

import (
	"context"
	"errors"
	"strings"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrInvalidServiceType = errors.New("invalid service type")

// QuoteRequest is an advisor selection.
type QuoteRequest struct {
	LineID       string
	MilestoneID  string
	ServiceType  entities.ServiceType
	Additionals  []string
	CrossSellIDs []string
}

// QuoteView is a priced selection plus what the advisor screen shows next to it.
type QuoteView struct {
	Line            *entities.VehicleLine
	Milestone       *entities.Milestone
	ServiceType     entities.ServiceType
	VehicleImageURL string
	Additionals     []string
	CrossSellIDs    []string
	Result          entities.QuoteResult
	Suggestions     []pricing.Suggestion
}

// IQuoteUseCase prices advisor selections against the current catalog.
type IQuoteUseCase interface {
	Milestones() []entities.Milestone
	AvailableMilestones(ctx context.Context, lineID string, serviceType entities.ServiceType) ([]entities.Milestone, error)
	CrossSellItems(ctx context.Context) ([]entities.CrossSellItem, error)
	Quote(ctx context.Context, req QuoteRequest) (QuoteView, error)
}

type QuoteUseCase struct {
	catalog    catalogAccess
	milestones []entities.Milestone
	metrics    interfaces.IQuoteMetrics
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store interfaces.ICatalogStore, milestones []entities.Milestone, metrics interfaces.IQuoteMetrics) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalogAccess{store: store}, milestones: milestones, metrics: metrics}
}

func (u *QuoteUseCase) Milestones() []entities.Milestone {
	out := make([]entities.Milestone, len(u.milestones))
	copy(out, u.milestones)
	return out
}

func (u *QuoteUseCase) AvailableMilestones(ctx context.Context, lineID string, serviceType entities.ServiceType) ([]entities.Milestone, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidLineID
	}
	st, err := normalizeServiceType(serviceType)
	if err != nil {
		return nil, err
	}
	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ID == lineID {
			return pricing.AvailableMilestones(&lines[i], u.milestones, st), nil
		}
	}
	return nil, ErrLineNotFound
}

func (u *QuoteUseCase) CrossSellItems(ctx context.Context) ([]entities.CrossSellItem, error) {
	return u.catalog.crossSell(ctx)
}

// Quote prices req. Ids that do not resolve against the current catalog are
// treated as not selected, so a stale selection yields an empty quote rather
// than an error.
func (u *QuoteUseCase) Quote(ctx context.Context, req QuoteRequest) (QuoteView, error) {
	req.LineID = strings.TrimSpace(req.LineID)
	req.MilestoneID = strings.TrimSpace(req.MilestoneID)
	if req.LineID == "" {
		return QuoteView{}, ErrInvalidLineID
	}
	if req.MilestoneID == "" {
		return QuoteView{}, ErrInvalidMilestoneID
	}
	st, err := normalizeServiceType(req.ServiceType)
	if err != nil {
		return QuoteView{}, err
	}

	snap := u.catalog.snapshot(ctx)
	return u.price(snap, req.LineID, req.MilestoneID, st, orderedSet(req.Additionals), orderedSet(req.CrossSellIDs)), nil
}

func (u *QuoteUseCase) price(snap catalog.Snapshot, lineID, milestoneID string, st entities.ServiceType, additionals, crossSell []string) QuoteView {
	line := snap.Line(lineID)
	milestone := u.milestone(milestoneID)

	res := pricing.ResolveQuote(pricing.QuoteInput{
		Line:        line,
		Milestone:   milestone,
		ServiceType: st,
		Catalogs: pricing.Catalogs{
			Parts:     snap.Parts,
			Labor:     snap.Labor,
			Supplies:  snap.Supplies,
			CrossSell: snap.CrossSell,
			LaborRate: snap.LaborRate,
		},
		Definitions:  pricing.Definitions(snap.Definitions),
		Additionals:  additionals,
		CrossSellIDs: crossSell,
	})

	if line == nil || milestone == nil {
		log.Debug().Str("line_id", lineID).Str("milestone_id", milestoneID).Msg("[quote][usecase] selection not in catalog, empty quote")
	} else {
		for _, d := range res.Dropped {
			log.Debug().
				Str("line_id", lineID).
				Str("milestone_id", milestoneID).
				Str("kind", string(d.Kind)).
				Str("ref_id", d.ID).
				Str("reason", d.Reason).
				Msg("[quote][usecase] dangling reference dropped")
		}
		if u.metrics != nil {
			u.metrics.QuoteResolved(milestone.Type, res.Dropped)
		}
	}

	return QuoteView{
		Line:            line,
		Milestone:       milestone,
		ServiceType:     st,
		VehicleImageURL: pricing.VehicleImageURL(line, st),
		Additionals:     additionals,
		CrossSellIDs:    crossSell,
		Result:          res,
		Suggestions:     pricing.Suggest(line, res, snap.Labor, snap.Parts),
	}
}

func (u *QuoteUseCase) milestone(id string) *entities.Milestone {
	if id == entities.CustomMilestoneID {
		m := entities.CustomMilestone()
		return &m
	}
	for i := range u.milestones {
		if u.milestones[i].ID == id {
			m := u.milestones[i]
			return &m
		}
	}
	return nil
}

// normalizeServiceType defaults to particular.
func normalizeServiceType(st entities.ServiceType) (entities.ServiceType, error) {
	st = entities.ServiceType(strings.ToLower(strings.TrimSpace(string(st))))
	if st == "" {
		return entities.ServiceTypeParticular, nil
	}
	if !st.Valid() {
		return "", ErrInvalidServiceType
	}
	return st, nil
}

// orderedSet trims, drops blanks and keeps the first occurrence of each value.
func orderedSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
