package night

// Outcome kinds. Each probability table resolves a roll to one of these.
const (
	KindGood    Kind = "good"
	KindBad     Kind = "bad"
	KindNeutral Kind = "neutral"

	KindPestInvasion Kind = "pest_invasion"
	KindRobbery      Kind = "robbery"
	KindGoodBugs     Kind = "good_bugs"

	KindDrought Kind = "drought"
	KindFlood   Kind = "flood"
	KindTornado Kind = "tornado"

	KindNothing Kind = "nothing"
)

// Weather bands in degrees Celsius
const (
	GoodTempMin  = 24
	GoodTempMax  = 30
	BadColdBelow = 20
	BadHotAbove  = 35

	goodTempSpan    = 7  // 24..30
	coldTempSpan    = 20 // 0..19
	hotTempBase     = 35
	hotTempSpan     = 10 // 35..44
	mildTempBase    = 20
	mildTempSpan    = 5 // 20..24
	warmTempBase    = 30
	warmTempSpan    = 6 // 30..35
	rollSpace       = 100
	coinFlipOutcome = 2
)

// Effect sizes
const (
	GoodWeatherAcceleration = 2
	BadWeatherDelay         = 1
	GoodBugsAcceleration    = 1
	DroughtDays             = 2
	PestMinDestroyed        = 1
	PestExtraSpan           = 2 // destroys 1 or 2
	RobberyMinPercent       = 10
	RobberyPercentSpan      = 41 // 10..50
	FloodPercent            = 25
)

// Night report messages
const (
	MsgGoodWeather         = "Good weather today! Crops grew faster."
	MsgBadWeather          = "Bad weather today! Crops grew slower."
	MsgDroughtEnded        = "The drought has ended!"
	MsgDroughtContinuesFmt = "Drought continues! No water available for %d more days."
	MsgPestInvasionFmt     = "Pest invasion! %d crops were destroyed."
	MsgRobberyFmt          = "Robbery! Lost %d%% of your inventory."
	MsgRobberyWithMoneyFmt = "Robbery! Lost %d%% of your inventory and money."
	MsgGoodBugs            = "Good bugs visited! Crops grew faster."
	MsgDroughtStartedFmt   = "Drought has started! No water available for %d days."
	MsgFloodFmt            = "Flood! %d crops were destroyed."
	MsgTornado             = "Tornado! All crops and inventory were lost!"
	MsgForecastBucketFmt   = "- %s: %d%%"
	MsgForecastWeather     = "Weather:"
	MsgForecastEvents      = "Events:"
	MsgForecastDisasters   = "Natural Disasters:"
)
