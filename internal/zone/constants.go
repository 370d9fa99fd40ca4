package zone

// Zone bounds in meters. Length is additionally capped by MaxLength(distance).
const (
	WidthMin    = 1.0
	WidthMax    = 5.0
	LengthMin   = 1.0
	LengthMax   = 5.0
	HeightMin   = 2.0
	HeightMax   = 3.0
	DistanceMin = 1.5
	DistanceMax = 3.5
)

// Default is the zone the configurator starts with.
var Default = Settings{
	Width:    5.0,
	Length:   5.0,
	Height:   3.0,
	Distance: 3.5,
}
