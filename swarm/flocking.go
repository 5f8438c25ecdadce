package swarm

// Flocking holds the weights of Reynolds' boids rules.
type Flocking struct {
	separation float64
	alignment  float64
	cohesion   float64
}

// NewFlocking returns the default weights: separation 1.5, alignment 1, cohesion 1.
func NewFlocking() Flocking {
	return Flocking{separation: 1.5, alignment: 1.0, cohesion: 1.0}
}

// WithSeparation sets the separation weight.
func (f Flocking) WithSeparation(w float64) Flocking { f.separation = w; return f }

// WithAlignment sets the alignment weight.
func (f Flocking) WithAlignment(w float64) Flocking { f.alignment = w; return f }

// WithCohesion sets the cohesion weight.
func (f Flocking) WithCohesion(w float64) Flocking { f.cohesion = w; return f }

func (f Flocking) SeparationWeight() float64 { return f.separation }
func (f Flocking) AlignmentWeight() float64  { return f.alignment }
func (f Flocking) CohesionWeight() float64   { return f.cohesion }

// Behavior converts the weights into a flocking Behavior.
func (f Flocking) Behavior() Behavior {
	return NewBehavior(BehaviorFlocking).
		WithParameter("separation", f.separation).
		WithParameter("alignment", f.alignment).
		WithParameter("cohesion", f.cohesion)
}
