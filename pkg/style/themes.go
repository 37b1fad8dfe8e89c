package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	// PrefixColor marks the "omni:" prefix of every diagnostic
	PrefixColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	// DirectionColor marks the subcommand after the prefix
	DirectionColor = lipgloss.AdaptiveColor{
		Light: "#D39E00", // Amber
		Dark:  "#FFD54F",
	}

	AddedColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	RemovedColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	HighlightColor = lipgloss.AdaptiveColor{
		Light: "#D39E00",
		Dark:  "#FFD54F",
	}
)
