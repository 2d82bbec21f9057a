package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Indexer.ConflictRetries < 1 {
		return fmt.Errorf("indexer.conflict_retries must be >= 1 (got %d)", c.Indexer.ConflictRetries)
	}
	if c.Indexer.Parallelism < 1 {
		return fmt.Errorf("indexer.parallelism must be >= 1 (got %d)", c.Indexer.Parallelism)
	}

	for lang, phrases := range c.Normalizer.Phrases {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("normalizer.phrases: empty language code")
		}
		for _, p := range phrases {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("normalizer.phrases[%s]: empty phrase", lang)
			}
			if !strings.Contains(strings.TrimSpace(p), " ") {
				return fmt.Errorf("normalizer.phrases[%s]: %q is a single word, not a phrase", lang, p)
			}
		}
	}

	return nil
}
