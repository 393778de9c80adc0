package crop

// Growth constants
const (
	DeathChancePercent = 40 // chance an unwatered crop dies on the nightly tick
	BaseGrowth         = 10
	FertilizedGrowth   = 20
	AccelerationFactor = 2

	SeedlingThreshold = 30
	GrowingThreshold  = 70
	MatureThreshold   = 100
)
