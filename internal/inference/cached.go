package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ovasilenko/textdigest/internal/cache"
)

// CachedProvider wraps a Provider with a response cache so repeated runs
// over the same inputs do not hit the remote API again.
type CachedProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps the provider with the given cache
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: c, ttl: ttl}
}

// Name returns the wrapped provider's name
func (p *CachedProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable delegates to the wrapped provider
func (p *CachedProvider) IsAvailable(ctx context.Context) bool {
	return p.inner.IsAvailable(ctx)
}

// Summarize returns a cached summary when available
func (p *CachedProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	key := cache.Key(fmt.Sprintf("summarize|%s|%s|%d|%d|%s",
		p.inner.Name(), req.Model, req.MinLength, req.MaxLength, req.Text))

	if data, found := p.cache.Get(key); found {
		var resp SummarizeResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	resp, err := p.inner.Summarize(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = p.cache.Set(key, data, p.ttl)
	}
	return resp, nil
}

// Answer returns a cached answer when available
func (p *CachedProvider) Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error) {
	key := cache.Key(fmt.Sprintf("answer|%s|%s|%s|%s",
		p.inner.Name(), req.Model, req.Question, req.Context))

	if data, found := p.cache.Get(key); found {
		var resp AnswerResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	resp, err := p.inner.Answer(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = p.cache.Set(key, data, p.ttl)
	}
	return resp, nil
}
