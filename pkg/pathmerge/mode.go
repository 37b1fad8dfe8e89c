package pathmerge

import (
	"fmt"
	"strings"
)

// Mode selects how path contributions are handled
type Mode string

const (
	// ModeYes merges without asking
	ModeYes Mode = "yes"
	// ModeAsk merges after confirmation
	ModeAsk Mode = "ask"
	// ModeNo leaves the user configuration alone
	ModeNo Mode = "no"
)

// ParseMode parses yes, ask or no; an empty value means ask
func ParseMode(input string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	switch normalized {
	case "":
		return ModeAsk, nil
	case string(ModeYes), string(ModeAsk), string(ModeNo):
		return Mode(normalized), nil
	default:
		return "", fmt.Errorf("%q is not one of yes, ask or no", input)
	}
}

// ModeFlag is a pflag.Value for a Mode
type ModeFlag struct {
	target *Mode
}

// NewModeFlag creates a flag value writing to target, set to def
func NewModeFlag(target *Mode, def Mode) *ModeFlag {
	*target = def
	return &ModeFlag{target: target}
}

func (f *ModeFlag) String() string {
	if f == nil || f.target == nil {
		return ""
	}
	return string(*f.target)
}

func (f *ModeFlag) Set(input string) error {
	mode, err := ParseMode(input)
	if err != nil {
		return err
	}
	*f.target = mode
	return nil
}

func (f *ModeFlag) Type() string {
	return "yes/ask/no"
}
