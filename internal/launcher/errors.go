package launcher

import (
	"errors"
	"fmt"

	"github.com/studioutils/studioutils/internal/catalog"
)

// Sentinel errors for errors.Is matching.
var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrInvalidState = errors.New("tool is not available")
)

// UnknownToolError is returned when the tool id is not in the registry.
type UnknownToolError struct {
	ID string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.ID)
}

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// InvalidStateError is returned when a tool exists but its status does not
// allow launching.
type InvalidStateError struct {
	ID     string
	Status catalog.Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("tool %q cannot be launched: status is %s", e.ID, e.Status.Label())
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
