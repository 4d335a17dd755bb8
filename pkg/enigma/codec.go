package enigma

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dd0wney/cluso-enigma/pkg/metrics"
)

// DefaultCodecCacheSize is the number of decoded strings the package codec keeps
const DefaultCodecCacheSize = 256

var defaultCodec = mustCodec(DefaultCodecCacheSize, nil)

// Codec parses configuration strings, remembering recent successful decodes
// so that restoring a known configuration skips the grammar work.
// It is safe for concurrent use.
type Codec struct {
	cache   *lru.Cache[string, Configuration]
	metrics *metrics.Registry
}

// NewCodec creates a codec caching up to size decoded configurations.
// reg may be nil.
func NewCodec(size int, reg *metrics.Registry) (*Codec, error) {
	cache, err := lru.New[string, Configuration](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create codec cache: %w", err)
	}
	return &Codec{cache: cache, metrics: reg}, nil
}

func mustCodec(size int, reg *metrics.Registry) *Codec {
	c, err := NewCodec(size, reg)
	if err != nil {
		panic(err)
	}
	return c
}

// Decode validates and decodes s
func (c *Codec) Decode(s string) (Configuration, error) {
	key := strings.TrimSpace(s)

	if cfg, ok := c.cache.Get(key); ok {
		c.metrics.RecordCacheLookup(true)
		c.metrics.RecordParse(nil, "")
		return cfg.clone(), nil
	}
	c.metrics.RecordCacheLookup(false)

	cfg, err := DecodeConfiguration(key)
	c.metrics.RecordParse(err, errorKind(err))
	if err != nil {
		return Configuration{}, err
	}

	c.cache.Add(key, cfg.clone())
	return cfg, nil
}

// Parse decodes s and builds fresh components for it
func (c *Codec) Parse(s string) (*Reflector, []*Rotor, *Plugboard, error) {
	cfg, err := c.Decode(s)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg.Build()
}

// Len returns the number of cached configurations
func (c *Codec) Len() int {
	return c.cache.Len()
}

// Purge empties the cache
func (c *Codec) Purge() {
	c.cache.Purge()
}
