package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPartID        = errors.New("invalid part id")
	ErrInvalidPartName      = errors.New("invalid part name")
	ErrInvalidPartReference = errors.New("invalid part reference")
	ErrInvalidPartCategory  = errors.New("invalid part category")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrPartNotFound         = errors.New("part not found")
)

// PartUpdate carries the editable fields of a part. Nil fields are left as is.
type PartUpdate struct {
	Reference *string
	Name      *string
	Price     *decimal.Decimal
	Category  *entities.PartCategory
}

// ReferenceGroup is every live part sharing one reference.
type ReferenceGroup struct {
	Reference string
	Name      string
	Parts     []entities.Part
}

// IPartUseCase manages the line-specific parts catalog.
type IPartUseCase interface {
	ListByLine(ctx context.Context, lineID string) ([]entities.Part, error)
	ListAll(ctx context.Context) ([]entities.Part, error)
	ListByReference(ctx context.Context) ([]ReferenceGroup, error)
	Create(ctx context.Context, part entities.Part) (entities.Part, error)
	Update(ctx context.Context, id string, upd PartUpdate) (entities.Part, error)
	UpdateByReference(ctx context.Context, reference string, upd PartUpdate) (int, error)
	Delete(ctx context.Context, id string) error
}

type PartUseCase struct {
	catalog catalogAccess
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(store interfaces.ICatalogStore) *PartUseCase {
	return &PartUseCase{catalog: catalogAccess{store: store}}
}

func (u *PartUseCase) ListByLine(ctx context.Context, lineID string) ([]entities.Part, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidLineID
	}
	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0)
	for _, p := range parts {
		if p.LineID == lineID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListAll returns live parts only: parts whose line was deleted are hidden.
func (u *PartUseCase) ListAll(ctx context.Context) ([]entities.Part, error) {
	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return nil, err
	}
	live := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		live[l.ID] = struct{}{}
	}
	out := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		if _, ok := live[p.LineID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByReference groups live parts by reference, sorted by reference.
func (u *PartUseCase) ListByReference(ctx context.Context) ([]ReferenceGroup, error) {
	parts, err := u.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := map[string]int{}
	groups := make([]ReferenceGroup, 0)
	for _, p := range parts {
		i, ok := idx[p.Reference]
		if !ok {
			i = len(groups)
			idx[p.Reference] = i
			groups = append(groups, ReferenceGroup{Reference: p.Reference, Name: p.Name})
		}
		groups[i].Parts = append(groups[i].Parts, p)
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Reference < groups[b].Reference })
	return groups, nil
}

func (u *PartUseCase) Create(ctx context.Context, part entities.Part) (entities.Part, error) {
	part.Name = strings.TrimSpace(part.Name)
	part.Reference = strings.TrimSpace(part.Reference)
	part.LineID = strings.TrimSpace(part.LineID)
	if part.Name == "" {
		return entities.Part{}, ErrInvalidPartName
	}
	if part.LineID == "" {
		return entities.Part{}, ErrInvalidLineID
	}
	if part.Price.IsNegative() {
		return entities.Part{}, ErrInvalidPrice
	}
	if part.Category == "" {
		part.Category = entities.PartCategoryMain
	}
	if !validCategory(part.Category) {
		return entities.Part{}, ErrInvalidPartCategory
	}

	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return entities.Part{}, err
	}
	found := false
	for _, l := range lines {
		if l.ID == part.LineID {
			found = true
			break
		}
	}
	if !found {
		return entities.Part{}, ErrLineNotFound
	}

	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return entities.Part{}, err
	}
	part.ID = "p_" + uuid.NewString()
	if err := u.catalog.saveParts(ctx, append(parts, part)); err != nil {
		return entities.Part{}, err
	}
	log.Info().Str("part_id", part.ID).Str("line_id", part.LineID).Msg("[part][usecase] part created")
	return part, nil
}

func (u *PartUseCase) Update(ctx context.Context, id string, upd PartUpdate) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}
	if err := validatePartUpdate(upd); err != nil {
		return entities.Part{}, err
	}

	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return entities.Part{}, err
	}
	idx := -1
	for i := range parts {
		if parts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Part{}, ErrPartNotFound
	}

	applyPartUpdate(&parts[idx], upd)
	if err := u.catalog.saveParts(ctx, parts); err != nil {
		return entities.Part{}, err
	}
	return parts[idx], nil
}

// UpdateByReference applies upd to every part sharing reference, whatever
// its line, and returns how many parts changed.
func (u *PartUseCase) UpdateByReference(ctx context.Context, reference string, upd PartUpdate) (int, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return 0, ErrInvalidPartReference
	}
	if err := validatePartUpdate(upd); err != nil {
		return 0, err
	}

	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range parts {
		if parts[i].Reference == reference {
			applyPartUpdate(&parts[i], upd)
			n++
		}
	}
	if n == 0 {
		return 0, ErrPartNotFound
	}
	if err := u.catalog.saveParts(ctx, parts); err != nil {
		return 0, err
	}
	log.Info().Str("reference", reference).Int("updated", n).Msg("[part][usecase] parts updated by reference")
	return n, nil
}

func (u *PartUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}
	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(parts) {
		return ErrPartNotFound
	}
	return u.catalog.saveParts(ctx, kept)
}

func validatePartUpdate(upd PartUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return ErrInvalidPartName
	}
	if upd.Reference != nil && strings.TrimSpace(*upd.Reference) == "" {
		return ErrInvalidPartReference
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if upd.Category != nil && !validCategory(*upd.Category) {
		return ErrInvalidPartCategory
	}
	return nil
}

func applyPartUpdate(p *entities.Part, upd PartUpdate) {
	if upd.Reference != nil {
		p.Reference = strings.TrimSpace(*upd.Reference)
	}
	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
}

func validCategory(c entities.PartCategory) bool {
	return c == entities.PartCategoryMain || c == entities.PartCategoryAdditive
}
