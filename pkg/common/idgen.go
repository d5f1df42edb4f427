package common

import (
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

// IDGenerator hands out opaque unique identifiers. Registries take one at
// construction so tests can supply a deterministic implementation.
type IDGenerator interface {
	NextID() string
}

// SnowflakeGenerator is the production generator. Ids never collide across
// restarts within one node id.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrap(err, "create snowflake node")
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NextID() string {
	return g.node.Generate().String()
}

// SequenceGenerator yields prefix-1, prefix-2, ... Used in tests and demo
// seeding where reproducible ids matter.
type SequenceGenerator struct {
	prefix string
	n      uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NextID() string {
	return fmt.Sprintf("%s-%d", g.prefix, atomic.AddUint64(&g.n, 1))
}
