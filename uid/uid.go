// Package uid provides snowflake identifiers with a short base58 text form.
package uid

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// ID is the unique identifier used for all database records. The zero value
// means "not set". IDs serialize as base58 strings in JSON and URLs.
type ID int64

var (
	initNode sync.Once
	node     *snowflake.Node
)

// New generates a new unique ID. The node number is randomized at process
// start; uniqueness across processes relies on the timestamp and step bits.
func New() ID {
	initNode.Do(func() {
		var err error
		// nolint:gosec // node selection does not need crypto randomness
		node, err = snowflake.NewNode(rand.Int63n(1024))
		if err != nil {
			panic(err)
		}
	})

	return ID(node.Generate())
}

func (i ID) String() string {
	if i == 0 {
		return ""
	}
	return snowflake.ID(i).Base58()
}

// Parse converts the base58 text form back into an ID.
func Parse(b []byte) (ID, error) {
	id, err := snowflake.ParseBase58(b)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", string(b))
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid id %q", string(b))
	}
	return ID(id), nil
}

func (i ID) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *ID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*i = 0
		return nil
	}
	id, err := Parse(b)
	if err != nil {
		return err
	}
	*i = id
	return nil
}
