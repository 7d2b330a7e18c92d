package models

import (
	"fmt"
	"os"
)

// Experience represents a work or learning experience card
type Experience struct {
	Role    Text       `json:"role"`
	Company Text       `json:"company"`
	Date    Text       `json:"date"`
	Points  StringList `json:"points"`
	Skills  StringList `json:"skills"`
}

// Truncate returns the first limit experiences. A limit of zero or less
// means no truncation.
func Truncate(experiences []Experience, limit int) []Experience {
	if limit <= 0 || limit >= len(experiences) {
		return experiences
	}
	return experiences[:limit]
}

// LoadExperiences reads an experiences file from disk
func LoadExperiences(path string) ([]Experience, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	experiences, err := DecodeList[Experience](data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return experiences, nil
}

// FallbackExperiences returns a fresh copy of the built-in dataset shown
// when experiences.json cannot be loaded.
//
// TODO: this duplicates the sample data/experiences.json by hand; decide
// whether the sample file should become the single source.
func FallbackExperiences() []Experience {
	out := make([]Experience, len(fallbackExperiences))
	for i, exp := range fallbackExperiences {
		exp.Points = append(StringList(nil), exp.Points...)
		exp.Skills = append(StringList(nil), exp.Skills...)
		out[i] = exp
	}
	return out
}

var fallbackExperiences = []Experience{
	{
		Role:    "Summer Assistant",
		Company: "Family Day Daycare",
		Date:    "Jun 2025 — Aug 2025",
		Points: StringList{
			"Supported educators with daily classroom routines, supervision, and safe transitions.",
			"Assisted with planning and running age-appropriate activities (literacy, art, outdoor play).",
			"Maintained a clean, organized environment and followed health/safety procedures.",
			"Built strong communication skills by collaborating with staff and engaging with children.",
		},
		Skills: StringList{"JavaScript", "React", "Node.js"},
	},
	{
		Role:    "Co-founder SkilledStack",
		Company: "SkilledStack",
		Date:    "Sep 2024 — Present",
		Points: StringList{
			"Built and launched modern websites for local clients using HTML/CSS/JavaScript.",
			"Handled client communication, requirements gathering, and weekly progress updates.",
			"Improved site performance, mobile responsiveness, and accessibility across pages.",
			"Managed hosting, deployments, and quick iteration based on client feedback.",
		},
		Skills: StringList{"HTML", "CSS", "JavaScript"},
	},
	{
		Role:    "TryHackMe Student",
		Company: "TryHackMe",
		Date:    "Sep 2025 — Present",
		Points: StringList{
			"Completed hands-on cybersecurity labs focused on networking, Linux, and web security.",
			"Practiced recon, vulnerability basics, and safe testing methodologies in guided rooms.",
			"Documented learnings and created small scripts/tools to automate simple tasks.",
			"Built consistency through weekly training and skill progression.",
		},
		Skills: StringList{"Accessibility", "Cyber Security", "WordPress"},
	},
	{
		Role:    "Hack Club Flagship",
		Company: "TryHackMe",
		Date:    "60 hour Challenge",
		Points: StringList{
			"Built a project from scratch during a 60-hour challenge with rapid iteration.",
			"Designed the UI, structured components cleanly, and shipped a working MVP.",
			"Focused on clean code, responsiveness, and small visual polish improvements.",
			"Tracked progress, solved bugs fast, and pushed updates consistently.",
		},
		Skills: StringList{"JavaScript", "CSS", "HTML"},
	},
}
