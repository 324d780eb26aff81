// Package snowflake hands out time-ordered unique IDs.
//
// It is a thin wrapper over github.com/bwmarrin/snowflake that validates
// the node number up front.
package snowflake

import (
	"errors"

	bsf "github.com/bwmarrin/snowflake"
)

var ErrInvalidNodeID = errors.New("node ID must be between 0 and 1023")

// Generator generates unique Snowflake IDs for one node.
type Generator struct {
	node *bsf.Node
}

// NewGenerator creates a generator. nodeID must be between 0 and 1023.
func NewGenerator(nodeID int64) (*Generator, error) {
	if nodeID < 0 || nodeID > 1023 {
		return nil, ErrInvalidNodeID
	}
	node, err := bsf.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

// Generate returns the next ID.
func (g *Generator) Generate() int64 {
	return g.node.Generate().Int64()
}

// GenerateString returns the next ID in base 36, suitable for file names.
func (g *Generator) GenerateString() string {
	return g.node.Generate().Base36()
}

// NodeOf extracts the node number from an ID.
func NodeOf(id int64) int64 {
	return bsf.ParseInt64(id).Node()
}
