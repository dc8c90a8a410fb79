package domain

type Experience string

const (
	ExperienceUnset        Experience = ""
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// ValidExperiences is the canonical set of accepted experience strings.
// The empty string means "not answered" and is accepted.
var ValidExperiences = map[string]bool{
	"": true, "beginner": true, "intermediate": true, "advanced": true,
}

// ExperienceOptions lists the selectable experience levels in display order.
var ExperienceOptions = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

type GardenType string

const (
	GardenUnset   GardenType = ""
	GardenIndoor  GardenType = "indoor"
	GardenOutdoor GardenType = "outdoor"
	GardenUrban   GardenType = "urban"
	GardenFarm    GardenType = "farm"
)

// ValidGardenTypes is the canonical set of accepted garden type strings.
var ValidGardenTypes = map[string]bool{
	"": true, "indoor": true, "outdoor": true, "urban": true, "farm": true,
}

// GardenTypeOptions lists the selectable garden types in display order.
var GardenTypeOptions = []GardenType{GardenIndoor, GardenOutdoor, GardenUrban, GardenFarm}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ClimateZone string

const (
	ClimateTropical      ClimateZone = "Tropical"
	ClimateSubtropical   ClimateZone = "Subtropical"
	ClimateTemperate     ClimateZone = "Temperate"
	ClimateColdTemperate ClimateZone = "Cold Temperate"
	ClimatePolar         ClimateZone = "Polar"
)

type Hemisphere string

const (
	HemisphereNorthern Hemisphere = "Northern"
	HemisphereSouthern Hemisphere = "Southern"
)
