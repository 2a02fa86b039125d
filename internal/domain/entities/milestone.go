package entities

type MilestoneType string

const (
	MilestoneTypeMileage MilestoneType = "mileage"
	MilestoneTypeService MilestoneType = "service"
	MilestoneTypeTime    MilestoneType = "time"
	MilestoneTypeCustom  MilestoneType = "custom"
)

// CustomMilestoneID identifies the manually-built, empty-recipe quote.
const CustomMilestoneID = "custom"

// Milestone is a maintenance checkpoint. Interval is kilometers for mileage
// milestones and informational otherwise.
type Milestone struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Type     MilestoneType `json:"type" yaml:"type"`
	Interval int           `json:"interval" yaml:"interval"`
}

// CustomMilestone is always offered last by the availability filter.
func CustomMilestone() Milestone {
	return Milestone{ID: CustomMilestoneID, Name: "Personalizado", Type: MilestoneTypeCustom, Interval: 0}
}
