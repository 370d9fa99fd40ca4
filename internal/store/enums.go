package store

import "fmt"

// InstallationHeight is the physical mount of the capture device.
type InstallationHeight int

const (
	Tripod InstallationHeight = iota
	Ceiling
)

// MocapMode is the capture posture. HandsOn is unavailable in the dark.
type MocapMode int

const (
	Setup MocapMode = iota
	BodyOnly
	HandsOn
)

// LightCondition is the ambient light level of the room.
type LightCondition int

const (
	Bright LightCondition = iota
	Less
	Dark
)

// Every value of each enum, in panel order.
var (
	InstallationHeights = []InstallationHeight{Tripod, Ceiling}
	MocapModes          = []MocapMode{Setup, BodyOnly, HandsOn}
	LightConditions     = []LightCondition{Bright, Less, Dark}
)

func (h InstallationHeight) String() string {
	switch h {
	case Tripod:
		return "tripod"
	case Ceiling:
		return "ceiling"
	}
	return fmt.Sprintf("InstallationHeight(%d)", int(h))
}

func (m MocapMode) String() string {
	switch m {
	case Setup:
		return "setup"
	case BodyOnly:
		return "bodyOnly"
	case HandsOn:
		return "handsOn"
	}
	return fmt.Sprintf("MocapMode(%d)", int(m))
}

func (c LightCondition) String() string {
	switch c {
	case Bright:
		return "bright"
	case Less:
		return "less"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("LightCondition(%d)", int(c))
}

// Label is the human-readable panel caption.
func (h InstallationHeight) Label() string {
	switch h {
	case Tripod:
		return "Tripod"
	case Ceiling:
		return "Ceiling"
	}
	return h.String()
}

// Label is the human-readable panel caption.
func (m MocapMode) Label() string {
	switch m {
	case Setup:
		return "Setup"
	case BodyOnly:
		return "Body Only"
	case HandsOn:
		return "Full Body with Hands"
	}
	return m.String()
}

// Label is the human-readable panel caption.
func (c LightCondition) Label() string {
	switch c {
	case Bright:
		return "Bright Light"
	case Less:
		return "Less Light"
	case Dark:
		return "Dark"
	}
	return c.String()
}

func (h InstallationHeight) valid() bool { return h == Tripod || h == Ceiling }
func (m MocapMode) valid() bool          { return m >= Setup && m <= HandsOn }
func (c LightCondition) valid() bool     { return c >= Bright && c <= Dark }

// ParseInstallationHeight parses the String form.
func ParseInstallationHeight(s string) (InstallationHeight, error) {
	for _, h := range InstallationHeights {
		if h.String() == s {
			return h, nil
		}
	}
	return Tripod, fmt.Errorf("store: unknown installation height %q", s)
}

// ParseMocapMode parses the String form.
func ParseMocapMode(s string) (MocapMode, error) {
	for _, m := range MocapModes {
		if m.String() == s {
			return m, nil
		}
	}
	return Setup, fmt.Errorf("store: unknown mocap mode %q", s)
}

// ParseLightCondition parses the String form.
func ParseLightCondition(s string) (LightCondition, error) {
	for _, c := range LightConditions {
		if c.String() == s {
			return c, nil
		}
	}
	return Bright, fmt.Errorf("store: unknown light condition %q", s)
}

func (h InstallationHeight) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
func (m MocapMode) MarshalText() ([]byte, error)          { return []byte(m.String()), nil }
func (c LightCondition) MarshalText() ([]byte, error)     { return []byte(c.String()), nil }

func (h *InstallationHeight) UnmarshalText(b []byte) error {
	v, err := ParseInstallationHeight(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (m *MocapMode) UnmarshalText(b []byte) error {
	v, err := ParseMocapMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (c *LightCondition) UnmarshalText(b []byte) error {
	v, err := ParseLightCondition(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
