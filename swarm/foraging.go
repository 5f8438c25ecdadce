package swarm

// Foraging holds ant colony optimization settings.
type Foraging struct {
	pheromone   float64
	evaporation float64
	exploration float64
}

// NewForaging returns pheromone strength 1, evaporation 0.1 and exploration 0.2.
func NewForaging() Foraging {
	return Foraging{pheromone: 1.0, evaporation: 0.1, exploration: 0.2}
}

// WithPheromoneStrength sets the deposit strength.
func (f Foraging) WithPheromoneStrength(s float64) Foraging { f.pheromone = s; return f }

// WithEvaporationRate sets the evaporation rate, clamped to [0, 1].
func (f Foraging) WithEvaporationRate(r float64) Foraging {
	f.evaporation = clampUnit(r, 0)
	return f
}

// WithExplorationRate sets the exploration rate, clamped to [0, 1].
func (f Foraging) WithExplorationRate(r float64) Foraging {
	f.exploration = clampUnit(r, 0)
	return f
}

func (f Foraging) PheromoneStrength() float64 { return f.pheromone }
func (f Foraging) EvaporationRate() float64   { return f.evaporation }
func (f Foraging) ExplorationRate() float64   { return f.exploration }

// Behavior converts the settings into a foraging Behavior.
func (f Foraging) Behavior() Behavior {
	return NewBehavior(BehaviorForaging).
		WithParameter("pheromone_strength", f.pheromone).
		WithParameter("evaporation_rate", f.evaporation).
		WithParameter("exploration_rate", f.exploration)
}
