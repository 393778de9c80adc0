package sse

// ActionPayload is streamed after an action touches the farm
type ActionPayload struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Applied   int    `json:"applied"`
	Earned    int    `json:"earned"`
	Money     int    `json:"money"`
	Message   string `json:"message"`
}

// NightReportPayload is streamed when a day ends
type NightReportPayload struct {
	SessionID   string   `json:"session_id"`
	Day         int      `json:"day"`
	Lines       []string `json:"lines"`
	Peaceful    bool     `json:"peaceful"`
	Money       int      `json:"money"`
	MoneyLost   int      `json:"money_lost,omitempty"`
	Temperature int      `json:"temperature"`
	Outcome     string   `json:"outcome"`
}

// GameOverPayload is streamed once per finished game
type GameOverPayload struct {
	SessionID string `json:"session_id"`
	Outcome   string `json:"outcome"`
	Money     int    `json:"money"`
	Days      int    `json:"days"`
}
