package night

import "fmt"

// Forecast lists the odds of tonight's rolls, grouped by table.
func (e *Engine) Forecast() []string {
	return e.tables.Forecast()
}

// Forecast renders the tables in the order they are rolled for display.
func (ts Tables) Forecast() []string {
	var lines []string
	for _, section := range []struct {
		title string
		table Table
	}{
		{MsgForecastWeather, ts.Weather},
		{MsgForecastEvents, ts.Events},
		{MsgForecastDisasters, ts.Disasters},
	} {
		lines = append(lines, section.title)
		for _, b := range section.table {
			lines = append(lines, fmt.Sprintf(MsgForecastBucketFmt, b.Label, b.Weight))
		}
	}
	return lines
}
