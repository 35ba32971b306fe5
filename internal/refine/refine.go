// Package refine post-processes extracted resumes before mapping. The
// heuristics upstream are deliberately greedy; the steps here prune and
// normalize what they produced. Steps run in order and each reports how
// many entries it dropped.
package refine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eurocv/eurocv/internal/resume"
)

// Step is a single refinement applied to a resume in place.
type Step interface {
	Name() string
	Apply(r *resume.Resume) (Result, error)
}

// Result describes what one step did.
type Result struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the steps sequentially. A failing step aborts the run;
// the resume may be partially refined at that point.
func Run(steps []Step, r *resume.Resume, logger *zap.Logger) error {
	for _, step := range steps {
		info, err := step.Apply(r)
		if err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil && info.Dropped > 0 {
			logger.Info("refine step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}
	}
	return nil
}

// Default returns the standard step order: prune empty work entries,
// collapse duplicate languages, then tidy whitespace.
func Default() []Step {
	return []Step{
		NewEmptyWork(),
		NewLanguageDedup(),
		NewWhitespace(),
	}
}
