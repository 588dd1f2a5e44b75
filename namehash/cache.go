package namehash

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds a Cache constructed with size <= 0.
const DefaultCacheSize = 4096

// Cache memoizes Engine.Node. It is safe for concurrent use and returns
// exactly what the wrapped engine would.
type Cache struct {
	engine Engine
	nodes  *lru.Cache[string, Node]
}

func NewCache(engine Engine, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	nodes, err := lru.New[string, Node](size)
	if err != nil {
		return nil, err
	}
	return &Cache{engine: engine, nodes: nodes}, nil
}

func (c *Cache) Node(name string) Node {
	if n, ok := c.nodes.Get(name); ok {
		return n
	}
	n := c.engine.Node(name)
	c.nodes.Add(name, n)
	return n
}

func (c *Cache) LabelHash(label string) (LabelHash, bool) {
	return c.engine.LabelHash(label)
}

// Engine returns the engine the cache computes with.
func (c *Cache) Engine() Engine { return c.engine }

func (c *Cache) Len() int { return c.nodes.Len() }
