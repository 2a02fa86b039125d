package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// oilQuarts is the engine-oil quantity put in generated recipes.
const oilQuarts = 4

type pricedFile struct {
	ID          string  `yaml:"id"`
	Reference   string  `yaml:"reference"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Hours       float64 `yaml:"hours"`
}

type catalogFile struct {
	LaborRate      float64                 `yaml:"laborRate"`
	Brands         []entities.Brand        `yaml:"brands"`
	Lines          []lineFile              `yaml:"lines"`
	Milestones     []entities.Milestone    `yaml:"milestones"`
	Labor          []pricedFile            `yaml:"labor"`
	Supplies       []pricedFile            `yaml:"supplies"`
	CrossSell      []pricedFile            `yaml:"crossSell"`
	MilestoneLabor map[string][]string     `yaml:"milestoneLabor"`
	Additives      []pricedFile            `yaml:"additives"`
	LineParts      map[string][]pricedFile `yaml:"lineParts"`
}

type lineFile struct {
	ID       string `yaml:"id"`
	BrandID  int64  `yaml:"brandId"`
	Name     string `yaml:"name"`
	ImageURL string `yaml:"imageUrl"`
}

// Catalog is the default catalog plus the static milestone list.
type Catalog struct {
	Milestones  []entities.Milestone
	Brands      []entities.Brand
	Lines       []entities.VehicleLine
	Parts       []entities.Part
	Labor       []entities.LaborActivity
	Supplies    []entities.Supply
	CrossSell   []entities.CrossSellItem
	LaborRate   decimal.Decimal
	Definitions map[string]entities.RecipeDefinition
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a Catalog from YAML. Every line gets its own parts plus a copy
// of the common additives; recipes are generated for every master milestone.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: parse catalog: %w", err)
	}

	c := &Catalog{
		Milestones: f.Milestones,
		Brands:     f.Brands,
		LaborRate:  decimal.NewFromFloat(f.LaborRate),
	}
	for _, l := range f.Lines {
		c.Lines = append(c.Lines, entities.VehicleLine{
			ID:              l.ID,
			BrandID:         l.BrandID,
			Name:            l.Name,
			ImageURL:        l.ImageURL,
			ServiceInterval: entities.DefaultServiceInterval,
		})
	}
	for _, l := range c.Lines {
		for _, p := range f.LineParts[l.ID] {
			c.Parts = append(c.Parts, seedPart("p_", l.ID, p, entities.PartCategoryMain))
		}
		for _, p := range f.Additives {
			c.Parts = append(c.Parts, seedPart("add_", l.ID, p, entities.PartCategoryAdditive))
		}
	}
	for _, l := range f.Labor {
		c.Labor = append(c.Labor, entities.LaborActivity{ID: l.ID, Description: l.Description, Hours: decimal.NewFromFloat(l.Hours)})
	}
	for _, s := range f.Supplies {
		c.Supplies = append(c.Supplies, entities.Supply{ID: s.ID, Name: s.Name, Price: decimal.NewFromFloat(s.Price)})
	}
	for _, x := range f.CrossSell {
		c.CrossSell = append(c.CrossSell, entities.CrossSellItem{ID: x.ID, Name: x.Name, Price: decimal.NewFromFloat(x.Price)})
	}
	c.Definitions = generateRecipes(c, f.MilestoneLabor)
	return c, nil
}

func seedPart(prefix, lineID string, p pricedFile, category entities.PartCategory) entities.Part {
	return entities.Part{
		ID:        prefix + lineID + "_" + p.Reference,
		Reference: p.Reference,
		Name:      p.Name,
		Price:     decimal.NewFromFloat(p.Price),
		LineID:    lineID,
		Category:  category,
	}
}

// generateRecipes gives every (line, master milestone) pair the milestone's
// labor, every supply and, for mileage and oil-change milestones, the line's
// oil filter plus four quarts of engine oil.
func generateRecipes(c *Catalog, milestoneLabor map[string][]string) map[string]entities.RecipeDefinition {
	supplyIDs := make([]string, 0, len(c.Supplies))
	for _, s := range c.Supplies {
		supplyIDs = append(supplyIDs, s.ID)
	}

	defs := pricing.Definitions{}
	for _, line := range c.Lines {
		filter, oil := oilParts(c.Parts, line.ID)
		for _, m := range c.Milestones {
			if pricing.CanonicalMilestoneID(m.ID) != m.ID {
				continue
			}
			def := entities.RecipeDefinition{
				LaborIDs:  append([]string{}, milestoneLabor[m.ID]...),
				SupplyIDs: append([]string{}, supplyIDs...),
				Parts:     []entities.RecipePart{},
			}
			if m.Type == entities.MilestoneTypeMileage || m.ID == "m_oil" {
				if filter != nil {
					def.Parts = append(def.Parts, entities.RecipePart{ID: filter.ID, Quantity: decimal.NewFromInt(1)})
				}
				if oil != nil {
					def.Parts = append(def.Parts, entities.RecipePart{ID: oil.ID, Quantity: decimal.NewFromInt(oilQuarts)})
				}
			}
			defs.Save(line.ID, m.ID, def)
		}
	}
	return defs
}

func oilParts(parts []entities.Part, lineID string) (filter, oil *entities.Part) {
	for i := range parts {
		p := &parts[i]
		if p.LineID != lineID || p.Category != entities.PartCategoryMain {
			continue
		}
		name := pricing.Fold(p.Name)
		if filter == nil && strings.Contains(name, "filtro de aceite") {
			filter = p
		}
		if oil == nil && strings.Contains(name, "aceite") && !strings.Contains(name, "filtro") && !strings.Contains(name, "transmision") {
			oil = p
		}
	}
	return filter, oil
}

func (c *Catalog) documents() (map[catalog.Path]json.RawMessage, error) {
	docs := map[catalog.Path]json.RawMessage{}
	var err error
	encode := func(path catalog.Path, raw json.RawMessage, e error) {
		if err == nil && e != nil {
			err = fmt.Errorf("seed: encode %s: %w", path, e)
		}
		docs[path] = raw
	}
	raw, e := catalog.EncodeBrands(c.Brands)
	encode(catalog.PathBrands, raw, e)
	raw, e = catalog.EncodeVehicleLines(c.Lines)
	encode(catalog.PathVehicleLines, raw, e)
	raw, e = catalog.EncodeParts(c.Parts)
	encode(catalog.PathParts, raw, e)
	raw, e = catalog.EncodeLaborActivities(c.Labor)
	encode(catalog.PathLaborActivities, raw, e)
	raw, e = catalog.EncodeSupplies(c.Supplies)
	encode(catalog.PathSupplies, raw, e)
	raw, e = catalog.EncodeCrossSellItems(c.CrossSell)
	encode(catalog.PathCrossSellItems, raw, e)
	raw, e = catalog.EncodeLaborRate(c.LaborRate)
	encode(catalog.PathGlobalLaborRate, raw, e)
	raw, e = catalog.EncodeDefinitions(c.Definitions)
	encode(catalog.PathMaintenanceDefinitions, raw, e)
	raw, e = catalog.EncodeIssues([]entities.IssueReport{})
	encode(catalog.PathIssues, raw, e)
	return docs, err
}

// Apply writes every collection that is still empty in store and returns the
// paths it wrote. Collections that already hold data are never touched.
func Apply(ctx context.Context, store interfaces.ICatalogStore, c *Catalog) ([]catalog.Path, error) {
	docs, err := c.documents()
	if err != nil {
		return nil, err
	}

	seeded := make([]catalog.Path, 0)
	for _, path := range catalog.AllPaths {
		current, err := store.Load(ctx, path, nil)
		if err != nil {
			return seeded, fmt.Errorf("seed: load %s: %w", path, err)
		}
		if !isEmpty(current) {
			continue
		}
		if err := store.Save(ctx, path, docs[path]); err != nil {
			return seeded, fmt.Errorf("seed: save %s: %w", path, err)
		}
		seeded = append(seeded, path)
	}
	if len(seeded) > 0 {
		log.Info().Int("collections", len(seeded)).Msg("[catalog][seed] default catalog written")
	}
	return seeded, nil
}

func isEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
