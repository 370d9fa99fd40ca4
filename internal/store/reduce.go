package store

import "mocap-zone-configurator/internal/zone"

// Snapshot is the immutable configuration read by every dependent.
type Snapshot struct {
	Zone         zone.Settings      `yaml:"zone" json:"zone"`
	Installation InstallationHeight `yaml:"installation_height" json:"installation_height"`
	Mode         MocapMode          `yaml:"mocap_mode" json:"mocap_mode"`
	Light        LightCondition     `yaml:"light_condition" json:"light_condition"`
}

// Default is the configuration the configurator starts with.
var Default = Snapshot{
	Zone:         zone.Default,
	Installation: Tripod,
	Mode:         Setup,
	Light:        Bright,
}

// Available reports whether mode can be selected under the current light
// without coercing it.
func (s Snapshot) Available(mode MocapMode) bool {
	return !(mode == HandsOn && s.Light == Dark)
}

// Action is one store write. The set of actions is closed.
type Action interface {
	op() string
}

type SetZoneSettings struct{ Patch zone.Patch }
type SetInstallationHeight struct{ Height InstallationHeight }
type SetMocapMode struct{ Mode MocapMode }
type SetLightCondition struct{ Condition LightCondition }

func (SetZoneSettings) op() string       { return "set_zone_settings" }
func (SetInstallationHeight) op() string { return "set_installation_height" }
func (SetMocapMode) op() string          { return "set_mocap_mode" }
func (SetLightCondition) op() string     { return "set_light_condition" }

// Coercion describes a field the reducer changed away from what was asked.
type Coercion struct {
	Kind  string
	Field string
}

// Coercion kinds.
const (
	KindClamp      = "clamp"
	KindLightReset = "light_forced_bright"
	KindModeReset  = "mode_forced_setup"
	KindZoneEdit   = "mode_reset_on_zone_edit"
)

// Reduce applies a to s. It is the only place the cross-field rules live:
// a zone edit returns the mode to Setup, and HandsOn never coexists with
// Dark. For that pair the field written last wins and the other falls back
// to its default (Bright light, Setup mode). Enum values outside their range
// leave the snapshot unchanged.
func Reduce(s Snapshot, a Action) (Snapshot, []Coercion) {
	var coerced []Coercion
	next := s

	switch a := a.(type) {
	case SetZoneSettings:
		next.Zone = zone.Derive(s.Zone, a.Patch)
		coerced = append(coerced, clamped(s.Zone, a.Patch, next.Zone)...)
		if s.Mode != Setup {
			coerced = append(coerced, Coercion{Kind: KindZoneEdit, Field: "mocap_mode"})
		}
		next.Mode = Setup

	case SetInstallationHeight:
		if a.Height.valid() {
			next.Installation = a.Height
		}

	case SetMocapMode:
		if !a.Mode.valid() {
			break
		}
		next.Mode = a.Mode
		if a.Mode == HandsOn && s.Light == Dark {
			next.Light = Bright
			coerced = append(coerced, Coercion{Kind: KindLightReset, Field: "light_condition"})
		}

	case SetLightCondition:
		if !a.Condition.valid() {
			break
		}
		next.Light = a.Condition
		if a.Condition == Dark && s.Mode == HandsOn {
			next.Mode = Setup
			coerced = append(coerced, Coercion{Kind: KindModeReset, Field: "mocap_mode"})
		}
	}

	return next, coerced
}

// clamped lists the patched fields whose stored value differs from the request.
func clamped(prev zone.Settings, p zone.Patch, got zone.Settings) []Coercion {
	merged := zone.Merge(prev, p)
	var out []Coercion
	for _, d := range zone.Dimensions {
		if merged.Value(d) != got.Value(d) {
			out = append(out, Coercion{Kind: KindClamp, Field: d.String()})
		}
	}
	return out
}

// normalize makes an arbitrary snapshot satisfy every invariant.
func normalize(s Snapshot) Snapshot {
	s.Zone = zone.Derive(s.Zone, zone.Patch{})
	if !s.Installation.valid() {
		s.Installation = Default.Installation
	}
	if !s.Mode.valid() {
		s.Mode = Default.Mode
	}
	if !s.Light.valid() {
		s.Light = Default.Light
	}
	if s.Mode == HandsOn && s.Light == Dark {
		s.Light = Bright
	}
	return s
}
