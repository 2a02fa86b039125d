package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBrandName       = errors.New("invalid brand name")
	ErrBrandNotFound          = errors.New("brand not found")
	ErrInvalidLineID          = errors.New("invalid line id")
	ErrInvalidLineName        = errors.New("invalid line name")
	ErrInvalidServiceInterval = errors.New("invalid service interval")
	ErrLineNotFound           = errors.New("vehicle line not found")
)

// LineUpdate carries the editable fields of a line. Nil fields are left as is.
type LineUpdate struct {
	BrandID         *int64
	Name            *string
	ImageURL        *string
	ServiceInterval *int
}

// IVehicleUseCase manages brands and vehicle lines.
type IVehicleUseCase interface {
	ListBrands(ctx context.Context) ([]entities.Brand, error)
	CreateBrand(ctx context.Context, name string) (entities.Brand, error)
	UpdateBrand(ctx context.Context, id int64, name string) (entities.Brand, error)
	ListLines(ctx context.Context, brandID int64) ([]entities.VehicleLine, error)
	GetLine(ctx context.Context, id string) (entities.VehicleLine, error)
	CreateLine(ctx context.Context, line entities.VehicleLine) (entities.VehicleLine, error)
	UpdateLine(ctx context.Context, id string, upd LineUpdate) (entities.VehicleLine, error)
	DeleteLine(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	catalog catalogAccess
	now     func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(store interfaces.ICatalogStore) *VehicleUseCase {
	return &VehicleUseCase{catalog: catalogAccess{store: store}, now: time.Now}
}

func (u *VehicleUseCase) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	return u.catalog.brands(ctx)
}

func (u *VehicleUseCase) CreateBrand(ctx context.Context, name string) (entities.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Brand{}, ErrInvalidBrandName
	}

	brands, err := u.catalog.brands(ctx)
	if err != nil {
		return entities.Brand{}, err
	}

	// Brand ids are integers; keep them increasing even if the clock is behind.
	id := u.now().UnixMilli()
	for _, b := range brands {
		if b.ID >= id {
			id = b.ID + 1
		}
	}

	brand := entities.Brand{ID: id, Name: name}
	if err := u.catalog.saveBrands(ctx, append(brands, brand)); err != nil {
		return entities.Brand{}, err
	}
	log.Info().Int64("brand_id", id).Msg("[vehicle][usecase] brand created")
	return brand, nil
}

func (u *VehicleUseCase) UpdateBrand(ctx context.Context, id int64, name string) (entities.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Brand{}, ErrInvalidBrandName
	}

	brands, err := u.catalog.brands(ctx)
	if err != nil {
		return entities.Brand{}, err
	}
	idx := -1
	for i := range brands {
		if brands[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Brand{}, ErrBrandNotFound
	}

	brands[idx].Name = name
	if err := u.catalog.saveBrands(ctx, brands); err != nil {
		return entities.Brand{}, err
	}
	return brands[idx], nil
}

// ListLines returns every line, or only the brand's lines when brandID > 0.
func (u *VehicleUseCase) ListLines(ctx context.Context, brandID int64) ([]entities.VehicleLine, error) {
	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return nil, err
	}
	if brandID <= 0 {
		return lines, nil
	}
	out := make([]entities.VehicleLine, 0, len(lines))
	for _, l := range lines {
		if l.BrandID == brandID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (u *VehicleUseCase) GetLine(ctx context.Context, id string) (entities.VehicleLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VehicleLine{}, ErrInvalidLineID
	}
	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return entities.VehicleLine{}, err
	}
	for _, l := range lines {
		if l.ID == id {
			return l, nil
		}
	}
	return entities.VehicleLine{}, ErrLineNotFound
}

func (u *VehicleUseCase) CreateLine(ctx context.Context, line entities.VehicleLine) (entities.VehicleLine, error) {
	line.Name = strings.TrimSpace(line.Name)
	if line.Name == "" {
		return entities.VehicleLine{}, ErrInvalidLineName
	}
	if !validServiceInterval(line.ServiceInterval) {
		return entities.VehicleLine{}, ErrInvalidServiceInterval
	}

	brands, err := u.catalog.brands(ctx)
	if err != nil {
		return entities.VehicleLine{}, err
	}
	if !brandExists(brands, line.BrandID) {
		return entities.VehicleLine{}, ErrBrandNotFound
	}

	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return entities.VehicleLine{}, err
	}

	line.ID = "l_" + uuid.NewString()
	if line.ServiceInterval == 0 {
		line.ServiceInterval = entities.DefaultServiceInterval
	}
	if err := u.catalog.saveLines(ctx, append(lines, line)); err != nil {
		return entities.VehicleLine{}, err
	}
	log.Info().Str("line_id", line.ID).Msg("[vehicle][usecase] line created")
	return line, nil
}

func (u *VehicleUseCase) UpdateLine(ctx context.Context, id string, upd LineUpdate) (entities.VehicleLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VehicleLine{}, ErrInvalidLineID
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return entities.VehicleLine{}, ErrInvalidLineName
	}
	if upd.ServiceInterval != nil && !validServiceInterval(*upd.ServiceInterval) {
		return entities.VehicleLine{}, ErrInvalidServiceInterval
	}

	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return entities.VehicleLine{}, err
	}
	idx := -1
	for i := range lines {
		if lines[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.VehicleLine{}, ErrLineNotFound
	}

	if upd.BrandID != nil {
		brands, err := u.catalog.brands(ctx)
		if err != nil {
			return entities.VehicleLine{}, err
		}
		if !brandExists(brands, *upd.BrandID) {
			return entities.VehicleLine{}, ErrBrandNotFound
		}
		lines[idx].BrandID = *upd.BrandID
	}
	if upd.Name != nil {
		lines[idx].Name = strings.TrimSpace(*upd.Name)
	}
	if upd.ImageURL != nil {
		lines[idx].ImageURL = strings.TrimSpace(*upd.ImageURL)
	}
	if upd.ServiceInterval != nil {
		lines[idx].ServiceInterval = *upd.ServiceInterval
	}

	if err := u.catalog.saveLines(ctx, lines); err != nil {
		return entities.VehicleLine{}, err
	}
	return lines[idx], nil
}

// DeleteLine removes the line and every part that belongs to it.
func (u *VehicleUseCase) DeleteLine(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLineID
	}

	lines, err := u.catalog.lines(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.VehicleLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lines) {
		return ErrLineNotFound
	}

	parts, err := u.catalog.parts(ctx)
	if err != nil {
		return err
	}
	keptParts := make([]entities.Part, 0, len(parts))
	for _, p := range parts {
		if p.LineID != id {
			keptParts = append(keptParts, p)
		}
	}

	if err := u.catalog.saveLines(ctx, kept); err != nil {
		return err
	}
	if err := u.catalog.saveParts(ctx, keptParts); err != nil {
		return err
	}
	log.Info().Str("line_id", id).Int("parts_removed", len(parts)-len(keptParts)).Msg("[vehicle][usecase] line deleted")
	return nil
}

func validServiceInterval(v int) bool {
	return v == 0 || v == 5000 || v == 10000
}

func brandExists(brands []entities.Brand, id int64) bool {
	for _, b := range brands {
		if b.ID == id {
			return true
		}
	}
	return false
}
