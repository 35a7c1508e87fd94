package bptree

// Options configures tree behavior.
type Options struct {
	unique      bool
	logger      Logger
	lookupCache int // entries; 0 disables the key→leaf cache
}

func defaultOptions() Options {
	return Options{
		unique: false,
		logger: DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithUniqueKeys enforces primary-key semantics: inserting a row whose
// key is already resident replaces the stored row (last write wins).
// The default is secondary-index semantics, aggregating duplicate-key
// rows into one group in insertion order.
func WithUniqueKeys() Option {
	return func(opts *Options) {
		opts.unique = true
	}
}

// WithLogger sets the logger used for defensive diagnostics. The
// default discards everything.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}

// WithLookupCache enables a bounded key→leaf lookup cache with the
// given number of entries. The cache only pays off for workloads doing
// repeated point lookups between mutations; every Insert or Delete
// purges it.
func WithLookupCache(entries int) Option {
	return func(opts *Options) {
		opts.lookupCache = entries
	}
}
