package domain

// Stage is the growth phase of a single plot.
type Stage string

const (
	StageEmpty    Stage = "empty"
	StageSeed     Stage = "seed"
	StageSeedling Stage = "seedling"
	StageGrowing  Stage = "growing"
	StageMature   Stage = "mature"
	StageDead     Stage = "dead"
)

// IsLive reports whether a plot in this stage still holds a growing crop.
func (s Stage) IsLive() bool {
	return s != StageEmpty && s != StageDead
}

// IsBarren is the complement of IsLive.
func (s Stage) IsBarren() bool {
	return !s.IsLive()
}

// DisplayName renders the stage for status lines, e.g. "Seedling".
func (s Stage) DisplayName() string {
	return titleCaser.String(string(s))
}
