// SPDX-License-Identifier: MIT

package optim

// PointValue is a named point of the final configuration.
type PointValue struct {
	Name string  `yaml:"name" json:"name"`
	X    float64 `yaml:"x" json:"x"`
	Y    float64 `yaml:"y" json:"y"`
}

// GoalStatus is one confirm residual checked on the final configuration.
// A goal holds when |Value| < GoalTolerance, or, for negated goals
// (labels starting with "not_"), when it does not.
type GoalStatus struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
	Met   bool    `yaml:"met" json:"met"`
}

// Solution is the outcome of the best restart.
type Solution struct {
	Points    []PointValue `yaml:"points" json:"points"`
	Loss      float64      `yaml:"loss" json:"loss"`
	Goals     []GoalStatus `yaml:"goals" json:"goals"`
	Steps     int          `yaml:"steps" json:"steps"`
	Restart   int          `yaml:"restart" json:"restart"`
	Converged bool         `yaml:"converged" json:"converged"`
}

// GoalsMet reports whether every goal holds. True when there are none.
func (s *Solution) GoalsMet() bool {
	for _, g := range s.Goals {
		if !g.Met {
			return false
		}
	}
	return true
}

// Point returns the final coordinates of name.
func (s *Solution) Point(name string) (PointValue, bool) {
	for _, p := range s.Points {
		if p.Name == name {
			return p, true
		}
	}
	return PointValue{}, false
}

// better orders restarts: converged first, then lower loss.
func (s *Solution) better(o *Solution) bool {
	if s.Converged != o.Converged {
		return s.Converged
	}
	return s.Loss < o.Loss
}
