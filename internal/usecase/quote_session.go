package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
)

var ErrUnknownSessionCommand = errors.New("unknown session command")

// Session commands sent by the advisor screen.
const (
	CmdSelectBrand      = "select_brand"
	CmdSelectLine       = "select_line"
	CmdSelectMilestone  = "select_milestone"
	CmdSetServiceType   = "set_service_type"
	CmdToggleAdditional = "toggle_additional"
	CmdToggleCrossSell  = "toggle_cross_sell"
	CmdReset            = "reset"
)

// Selection is the advisor's in-progress choice. It is never persisted.
type Selection struct {
	BrandID      int64                `json:"brandId"`
	LineID       string               `json:"lineId"`
	MilestoneID  string               `json:"milestoneId"`
	ServiceType  entities.ServiceType `json:"serviceType"`
	Additionals  []string             `json:"additionals"`
	CrossSellIDs []string             `json:"crossSellIds"`
}

// SessionCommand mutates a Selection. Value is the id or name the command acts on.
type SessionCommand struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	BrandID int64  `json:"brandId,omitempty"`
}

// QuoteSession holds one advisor's selection and reprices it on demand.
// It is safe for concurrent use: the websocket reader applies commands while
// catalog change notifications trigger repricing.
type QuoteSession struct {
	mu     sync.Mutex
	quotes IQuoteUseCase
	sel    Selection
}

func NewQuoteSession(quotes IQuoteUseCase) *QuoteSession {
	return &QuoteSession{
		quotes: quotes,
		sel: Selection{
			ServiceType:  entities.ServiceTypeParticular,
			Additionals:  []string{},
			CrossSellIDs: []string{},
		},
	}
}

func (s *QuoteSession) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySelection()
}

// Apply changes the selection. Choosing a different milestone clears the
// additionals and cross-sell items; choosing a different line or brand also
// clears the milestone.
func (s *QuoteSession) Apply(cmd SessionCommand) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := strings.TrimSpace(cmd.Value)
	switch cmd.Type {
	case CmdSelectBrand:
		if cmd.BrandID != s.sel.BrandID {
			s.sel.BrandID = cmd.BrandID
			s.sel.LineID = ""
			s.clearMilestone()
		}
	case CmdSelectLine:
		if value != s.sel.LineID {
			s.sel.LineID = value
			s.clearMilestone()
		}
	case CmdSelectMilestone:
		if value != s.sel.MilestoneID {
			s.sel.MilestoneID = value
			s.sel.Additionals = []string{}
			s.sel.CrossSellIDs = []string{}
		}
	case CmdSetServiceType:
		st, err := normalizeServiceType(entities.ServiceType(value))
		if err != nil {
			return s.copySelection(), err
		}
		s.sel.ServiceType = st
	case CmdToggleAdditional:
		if value != "" {
			s.sel.Additionals = toggle(s.sel.Additionals, value)
		}
	case CmdToggleCrossSell:
		if value != "" {
			s.sel.CrossSellIDs = toggle(s.sel.CrossSellIDs, value)
		}
	case CmdReset:
		s.clearMilestone()
	default:
		return s.copySelection(), ErrUnknownSessionCommand
	}
	return s.copySelection(), nil
}

// Quote prices the current selection. Without a line and milestone the
// result is the empty quote.
func (s *QuoteSession) Quote(ctx context.Context) (QuoteView, error) {
	sel := s.Selection()
	if sel.LineID == "" || sel.MilestoneID == "" {
		return QuoteView{
			ServiceType:  sel.ServiceType,
			Additionals:  sel.Additionals,
			CrossSellIDs: sel.CrossSellIDs,
			Result:       pricing.ResolveQuote(pricing.QuoteInput{}),
			Suggestions:  []pricing.Suggestion{},
		}, nil
	}
	return s.quotes.Quote(ctx, QuoteRequest{
		LineID:       sel.LineID,
		MilestoneID:  sel.MilestoneID,
		ServiceType:  sel.ServiceType,
		Additionals:  sel.Additionals,
		CrossSellIDs: sel.CrossSellIDs,
	})
}

func (s *QuoteSession) clearMilestone() {
	s.sel.MilestoneID = ""
	s.sel.Additionals = []string{}
	s.sel.CrossSellIDs = []string{}
}

func (s *QuoteSession) copySelection() Selection {
	out := s.sel
	out.Additionals = append([]string{}, s.sel.Additionals...)
	out.CrossSellIDs = append([]string{}, s.sel.CrossSellIDs...)
	return out
}

func toggle(set []string, v string) []string {
	for i, existing := range set {
		if existing == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}
