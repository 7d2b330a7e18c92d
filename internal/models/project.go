package models

// Project represents a portfolio project card
type Project struct {
	Title   Text       `json:"title"`
	Summary Text       `json:"summary"`
	Cover   Text       `json:"cover"`
	Stack   StringList `json:"stack"`
	Link    Text       `json:"link"`
}

// TimelineEvent represents one entry of the personal timeline
type TimelineEvent struct {
	Date        Text `json:"date"`
	Title       Text `json:"title"`
	Description Text `json:"description"`
}

// Skill represents a skill chip in the marquee
type Skill struct {
	Name  Text  `json:"name"`
	Level Level `json:"level"`
}
