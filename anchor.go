package sitepdf

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewAnchorID returns a new anchor identifier for a navigation node.
//
// The id combines a base-36 nanosecond timestamp with a random component
// taken from a v4 UUID, prefixed with a letter since anchor identifiers
// must not start with a digit. Ids do not depend on node titles or paths
// (titles are not unique; paths may be absent for category nodes).
//
// Collisions are not detected: at the target scale of thousands of nodes
// per run the residual probability is negligible. Revisit if this is ever
// used at millions of nodes.
func NewAnchorID() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	return "n" + ts + "-" + uuid.NewString()[:8]
}
