package logic

// Result represents the outcome of digesting a single file.
type Result struct {
	// Input file path
	Input string

	// Uppercase hex digest
	Digest string

	// Input file size in bytes
	Size int64

	// Any error that occurred during processing
	Error error
}
