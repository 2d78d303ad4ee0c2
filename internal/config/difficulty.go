package config

// Floors the difficulty scaling never goes below.
const (
	minBehaviorInterval = 2
	minVulnerableTicks  = 60
)

// Progress is how far a run has come. Which field drives difficulty
// depends on the configured progression type.
type Progress struct {
	Score int
	Ticks int
	Maze  int // Zero-based campaign index
}

// DifficultyManager turns run progress into pursuer tuning.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager creates a manager for cfg. The initial level is
// clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:  cfg,
		base: min(max(cfg.InitialLevel, 0), 1),
	}
}

func (d *DifficultyManager) active() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1] for p.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.active() {
		return d.base
	}

	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = p.Score
	case "time":
		done = p.Ticks
	case "maze":
		done = p.Maze
	default:
		return d.base
	}

	frac := float64(done) / float64(max(d.cfg.Progression.MaxAt, 1))
	frac = min(max(frac, 0), 1)
	return d.base + frac*(1-d.base)
}

// BehaviorInterval returns how many ticks pursuers keep a behavior before
// re-rolling. Higher difficulty makes them change their mind more often.
func (d *DifficultyManager) BehaviorInterval(base int, p Progress) int {
	return d.scale(base, d.cfg.Scaling.IntervalReduction, minBehaviorInterval, p)
}

// VulnerableTicks returns the length of the window a power pellet grants.
func (d *DifficultyManager) VulnerableTicks(base int, p Progress) int {
	return d.scale(base, d.cfg.Scaling.VulnerableReduction, minVulnerableTicks, p)
}

// scale shrinks base by up to reduction ticks. The result never drops under
// floor, and a base already under floor is left alone.
func (d *DifficultyManager) scale(base, reduction, floor int, p Progress) int {
	cut := int(d.Level(p) * float64(reduction))
	return max(base-cut, min(base, floor))
}
