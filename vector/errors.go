package vector

import "errors"

var (
	// ErrLength indicates a requested element count above the maximum
	// representable or allocatable count. It is raised before any memory
	// is touched.
	ErrLength = errors.New("vector: length exceeds the maximum allocatable count")

	// ErrUntransferable indicates that the element type supports neither
	// move nor copy under the configured transfer policy, so a reallocation
	// cannot relocate it. The failing operation leaves no partial state.
	ErrUntransferable = errors.New("vector: element type supports neither move nor copy")
)
