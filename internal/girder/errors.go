package girder

import (
	"fmt"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// MalformedGirderError reports a girder definition whose element list does
// not form a connected, non-branching chain. Element is zero when the
// problem is not tied to a single element (e.g. an empty list).
type MalformedGirderError struct {
	Girder  string
	Element model.ElementID
	Reason  string
}

func (e *MalformedGirderError) Error() string {
	if e.Element != 0 {
		return fmt.Sprintf("girder %q is malformed: element %d %s", e.Girder, e.Element, e.Reason)
	}
	return fmt.Sprintf("girder %q is malformed: %s", e.Girder, e.Reason)
}
