// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps user-supplied CUE files at 1 MiB. Configuration
// files are tiny; anything larger is a mistake or an attack.
const DefaultMaxFileSize int64 = 1 << 20

type (
	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}

	// Option configures a ParseAndDecode call.
	Option func(*options)
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithMaxFileSize overrides the maximum accepted input size.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete requires all values to be concrete after unification.
func WithConcrete() Option {
	return func(o *options) { o.concrete = true }
}
