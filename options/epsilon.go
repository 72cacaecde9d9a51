package options

// DefaultEpsilon is the tolerance used by sweep and status-tree predicates
// when no [WithEpsilon] option overrides it.
const DefaultEpsilon = 1e-8

// WithEpsilon returns an [GeometryOptionsFunc] that sets the Epsilon value for functions that support it.
// Epsilon is a small positive value used to adjust for floating-point precision errors,
// ensuring numerical stability in geometric calculations.
//
// Parameters:
//   - epsilon: A small positive value specifying the tolerance range. Values within
//     [-epsilon, epsilon] are treated as zero.
//
// Behavior:
//   - When this option is applied, functions will use the specified Epsilon value
//     to handle near-zero results caused by floating-point arithmetic.
//   - If a negative epsilon is provided, it is clamped to 0.
//   - If not set, Epsilon keeps the default the caller started from: 0 for
//     point.New, [DefaultEpsilon] for segment.Intersect, statustree.New and
//     sweep.Create. Those three also use DefaultEpsilon when Epsilon is 0.
//
// Returns:
//   - An [GeometryOptionsFunc] function that modifies the Epsilon field in the geomOptions struct.
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if epsilon < 0 {
			epsilon = 0 // Default to no adjustment
		}
		opts.Epsilon = epsilon
	}
}
