package model

// Timer is a user-defined countdown. The JSON shape is the durable storage
// format, so field tags are load-bearing.
type Timer struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"`
	RemainingTime int    `json:"remainingTime"`
	IsRunning     bool   `json:"isRunning"`
	CreatedAt     int64  `json:"createdAt"`
}

// Fields carries user input for creating a timer. Duration is total seconds.
type Fields struct {
	Title       string
	Description string
	Duration    int
}

// Updates carries partial edits for an existing timer. Nil fields are left
// unchanged.
type Updates struct {
	Title       *string
	Description *string
	Duration    *int
}
