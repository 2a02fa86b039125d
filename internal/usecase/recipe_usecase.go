package usecase

import (
	"context"
	"errors"
	"strings"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidMilestoneID = errors.New("invalid milestone id")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrCustomRecipe       = errors.New("custom milestone has no stored recipe")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// RecipeView is a stored recipe plus the milestones that share it.
type RecipeView struct {
	LineID      string
	MilestoneID string
	CanonicalID string
	SharedWith  []string
	Definition  entities.RecipeDefinition
}

// IRecipeUseCase reads and writes recipes through the inheritance table.
//
// Saving a satellite milestone (30k, 70k, 90k...) writes its master's recipe,
// which every sibling then shares.
type IRecipeUseCase interface {
	GetDefinition(ctx context.Context, lineID, milestoneID string) (RecipeView, error)
	SaveDefinition(ctx context.Context, lineID, milestoneID string, def entities.RecipeDefinition) (RecipeView, error)
}

type RecipeUseCase struct {
	catalog    catalogAccess
	milestones []entities.Milestone
}

var _ IRecipeUseCase = (*RecipeUseCase)(nil)

func NewRecipeUseCase(store interfaces.ICatalogStore, milestones []entities.Milestone) *RecipeUseCase {
	return &RecipeUseCase{catalog: catalogAccess{store: store}, milestones: milestones}
}

func (u *RecipeUseCase) GetDefinition(ctx context.Context, lineID, milestoneID string) (RecipeView, error) {
	lineID, milestoneID, err := u.validateKey(lineID, milestoneID)
	if err != nil && !errors.Is(err, ErrCustomRecipe) {
		return RecipeView{}, err
	}
	if errors.Is(err, ErrCustomRecipe) {
		return RecipeView{LineID: lineID, MilestoneID: milestoneID, CanonicalID: milestoneID, SharedWith: []string{milestoneID}, Definition: entities.EmptyRecipe()}, nil
	}

	defs, err := u.catalog.definitions(ctx)
	if err != nil {
		return RecipeView{}, err
	}
	return u.view(lineID, milestoneID, pricing.Definitions(defs).Resolve(lineID, milestoneID)), nil
}

func (u *RecipeUseCase) SaveDefinition(ctx context.Context, lineID, milestoneID string, def entities.RecipeDefinition) (RecipeView, error) {
	lineID, milestoneID, err := u.validateKey(lineID, milestoneID)
	if err != nil {
		return RecipeView{}, err
	}
	for _, p := range def.Parts {
		if strings.TrimSpace(p.ID) == "" {
			return RecipeView{}, ErrInvalidPartID
		}
		if p.Quantity.IsNegative() {
			return RecipeView{}, ErrInvalidQuantity
		}
	}

	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return RecipeView{}, err
	}
	found := false
	for _, l := range lines {
		if l.ID == lineID {
			found = true
			break
		}
	}
	if !found {
		return RecipeView{}, ErrLineNotFound
	}

	stored, err := u.catalog.definitions(ctx)
	if err != nil {
		return RecipeView{}, err
	}
	defs := pricing.Definitions(stored)
	defs.Save(lineID, milestoneID, def)
	if err := u.catalog.saveDefinitions(ctx, defs); err != nil {
		return RecipeView{}, err
	}

	log.Info().
		Str("line_id", lineID).
		Str("milestone_id", milestoneID).
		Str("key", pricing.DefinitionKey(lineID, milestoneID)).
		Msg("[recipe][usecase] recipe saved")
	return u.view(lineID, milestoneID, defs.Resolve(lineID, milestoneID)), nil
}

func (u *RecipeUseCase) validateKey(lineID, milestoneID string) (string, string, error) {
	lineID = strings.TrimSpace(lineID)
	milestoneID = strings.TrimSpace(milestoneID)
	if lineID == "" {
		return "", "", ErrInvalidLineID
	}
	if milestoneID == "" {
		return "", "", ErrInvalidMilestoneID
	}
	if milestoneID == entities.CustomMilestoneID {
		return lineID, milestoneID, ErrCustomRecipe
	}
	for _, m := range u.milestones {
		if m.ID == milestoneID {
			return lineID, milestoneID, nil
		}
	}
	return "", "", ErrMilestoneNotFound
}

func (u *RecipeUseCase) view(lineID, milestoneID string, def entities.RecipeDefinition) RecipeView {
	return RecipeView{
		LineID:      lineID,
		MilestoneID: milestoneID,
		CanonicalID: pricing.CanonicalMilestoneID(milestoneID),
		SharedWith:  pricing.SharedMilestones(milestoneID),
		Definition:  def,
	}
}
