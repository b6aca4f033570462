package series

import "github.com/sartorproj/gendergap/internal/logging"

// Option configures Build.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger sets the logger used to report degraded groups. Without it Build
// logs to logging.Default.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: logging.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
