package extraction

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NameSource is a remote named-entity capability, e.g. an LLM.
type NameSource interface {
	ExtractPersonNames(ctx context.Context, sentence string) ([]string, error)
}

// Cache stores detector results between calls.
type Cache interface {
	Set(key string, value string, expiration time.Duration)
	Get(key string) (string, bool)
}

// RemoteDetector asks a NameSource for people and falls back to a local
// detector whenever the source errors or times out.
type RemoteDetector struct {
	source   NameSource
	fallback PersonDetector
	cache    Cache
	timeout  time.Duration
	ttl      time.Duration
	logger   *zap.Logger
}

// NewRemoteDetector creates a RemoteDetector. cache may be nil.
func NewRemoteDetector(source NameSource, fallback PersonDetector, cache Cache, timeout, ttl time.Duration, logger *zap.Logger) *RemoteDetector {
	if fallback == nil {
		fallback = NewLexiconDetector()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RemoteDetector{
		source:   source,
		fallback: fallback,
		cache:    cache,
		timeout:  timeout,
		ttl:      ttl,
		logger:   logger,
	}
}

// DetectPeople implements PersonDetector. Names the source returns that do
// not occur in the sentence are discarded.
func (d *RemoteDetector) DetectPeople(sentence string) []string {
	key := "people:" + sentence
	if d.cache != nil {
		if raw, ok := d.cache.Get(key); ok {
			var cached []string
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	names, err := d.source.ExtractPersonNames(ctx, sentence)
	if err != nil {
		d.logger.Warn("person_detector.remote_failed", zap.Error(err))
		return d.fallback.DetectPeople(sentence)
	}

	lower := strings.ToLower(sentence)
	people := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			people = append(people, n)
		}
	}

	if d.cache != nil {
		if b, err := json.Marshal(people); err == nil {
			d.cache.Set(key, string(b), d.ttl)
		}
	}
	return people
}
