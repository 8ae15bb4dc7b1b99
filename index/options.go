package index

import "github.com/hupe1980/orchard/resource"

// Options configures Build.
type Options struct {
	// Workers is the number of goroutines computing distance rows.
	// Values <= 1 build on the calling goroutine.
	Workers int

	// Resource optionally bounds memory, workers and evaluation rate.
	Resource *resource.Controller
}

// DefaultOptions contains the default configuration for Build.
var DefaultOptions = Options{
	Workers: 1,
}
