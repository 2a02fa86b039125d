package catalog

// Path names a collection in the catalog store.
type Path string

const (
	PathParts                  Path = "parts"
	PathLaborActivities        Path = "laborActivities"
	PathSupplies               Path = "supplies"
	PathMaintenanceDefinitions Path = "maintenanceDefinitions"
	PathGlobalLaborRate        Path = "globalLaborRate"
	PathCrossSellItems         Path = "crossSellItems"
	PathIssues                 Path = "issues"
	PathBrands                 Path = "brands"
	PathVehicleLines           Path = "vehicleLines"
)

// AllPaths lists every collection in load order.
var AllPaths = []Path{
	PathBrands,
	PathVehicleLines,
	PathParts,
	PathLaborActivities,
	PathSupplies,
	PathCrossSellItems,
	PathGlobalLaborRate,
	PathMaintenanceDefinitions,
	PathIssues,
}

// PricingPaths are the collections a quote depends on.
var PricingPaths = []Path{
	PathVehicleLines,
	PathParts,
	PathLaborActivities,
	PathSupplies,
	PathCrossSellItems,
	PathGlobalLaborRate,
	PathMaintenanceDefinitions,
}

func (p Path) String() string { return string(p) }

func (p Path) Valid() bool {
	for _, known := range AllPaths {
		if p == known {
			return true
		}
	}
	return false
}
