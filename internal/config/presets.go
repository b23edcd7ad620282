package config

// Presets are ready-made scenarios for the CLI.
var Presets = map[string]*Config{
	"snap": {
		Stiffness: 342, CriticallyDamped: true,
		Anchor: []float64{0, 0}, Position: []float64{100, 0}, Velocity: []float64{0, 0},
		FrameRate: 60, TimeScale: 1, MaxDuration: 5,
	},
	"bouncy": {
		Stiffness: 342, Damping: 12,
		Anchor: []float64{0, 0}, Position: []float64{100, 0}, Velocity: []float64{0, 0},
		FrameRate: 60, TimeScale: 1, MaxDuration: 10,
	},
	"lazy": {
		Stiffness: 40, Damping: 8,
		Anchor: []float64{0, 0}, Position: []float64{100, 0}, Velocity: []float64{0, 0},
		FrameRate: 60, TimeScale: 1, MaxDuration: 15,
	},
	"drag": {
		Friction: 4,
		Position: []float64{0, 0}, Velocity: []float64{120, 40},
		FrameRate: 60, TimeScale: 1, MaxDuration: 10,
	},
	"slowmo": {
		Stiffness: 342, CriticallyDamped: true,
		Anchor: []float64{0, 0}, Position: []float64{100, 0}, Velocity: []float64{0, 0},
		FrameRate: 60, TimeScale: 4, MaxDuration: 20,
	},
	"toss": {
		Stiffness: 120, Damping: 14, Friction: 1,
		Anchor: []float64{0, 0}, Position: []float64{0, 0}, Velocity: []float64{300, -120},
		FrameRate: 60, TimeScale: 1, MaxDuration: 10,
	},
}
