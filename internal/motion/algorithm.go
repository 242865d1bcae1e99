// internal/motion/algorithm.go
package motion

import "errors"

var (
	// ErrInvalidDestination reports a malformed movement target, such as
	// NaN coordinates or a negative region size.
	ErrInvalidDestination = errors.New("motion: invalid destination")

	// ErrAlgorithmContract reports an algorithm that returned a trace
	// violating the contract below. The planner rejects such traces rather
	// than dispatching them.
	ErrAlgorithmContract = errors.New("motion: algorithm violated its contract")
)

// Algorithm is the strategy abstraction for trace generation. The contract:
// Generate must not mutate the request, must return at least one point,
// the first point must equal the request's start and the last the resolved
// destination (both after the non-negative clamp), and the metrics must be
// fully populated. Alternate strategies (straight-line movers, recorded
// traces, deterministic test doubles) plug in here without touching the
// cursor controller.
type Algorithm interface {
	Name() string
	Generate(req Request) (*Trace, error)
}
