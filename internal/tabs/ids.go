package tabs

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDAllocator issues identifiers for items. Identifiers must be unique across
// every container that can exchange items.
type IDAllocator interface {
	Next() string
}

const defaultIDPrefix = "uid-"

var processIDs atomic.Uint64

// CounterAllocator issues monotonically increasing identifiers from a counter
// shared by the whole process.
type CounterAllocator struct {
	Prefix string
}

func (a CounterAllocator) Next() string {
	prefix := a.Prefix
	if prefix == "" {
		prefix = defaultIDPrefix
	}
	return fmt.Sprintf("%s%d", prefix, processIDs.Add(1)-1)
}

// UUIDAllocator issues random identifiers, for embedders that mix items from
// several processes.
type UUIDAllocator struct {
	Prefix string
}

func (a UUIDAllocator) Next() string {
	prefix := a.Prefix
	if prefix == "" {
		prefix = defaultIDPrefix
	}
	return prefix + uuid.NewString()
}

// NewAllocator returns the allocator registered under kind ("counter" or "uuid").
func NewAllocator(kind string) (IDAllocator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "counter":
		return CounterAllocator{}, nil
	case "uuid":
		return UUIDAllocator{}, nil
	default:
		return nil, fmt.Errorf("unknown id allocator %q (want counter or uuid)", kind)
	}
}
