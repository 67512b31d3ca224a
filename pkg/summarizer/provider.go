package summarizer

import "context"

// Provider is the contract for the external summarization backend.
// The call is a synchronous round-trip; callers decide about caching.
type Provider interface {
	Summarize(ctx context.Context, text string, options ...Option) (string, error)
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}
