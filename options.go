package streamkit

// Option represents a configuration option for write and copy operations
type Option func(*Options)

// Options contains all possible options for file operations
type Options struct {
	// Overwrite determines whether Copy may replace an existing
	// destination file
	Overwrite bool

	// Verify selects a checksum algorithm used to confirm the destination
	// content after a copy. Empty means the configured default applies.
	Verify ChecksumAlgorithm
}

// WithOverwrite enables or disables overwriting existing files
func WithOverwrite(overwrite bool) Option {
	return func(o *Options) {
		o.Overwrite = overwrite
	}
}

// WithVerify enables post-transfer checksum verification with the given
// algorithm
func WithVerify(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Verify = algorithm
	}
}

// processOptions processes the provided options
func processOptions(options ...Option) *Options {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}
	return opts
}
