package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	MainVersion = "v1.2.0"

	// Modular tools
	Benchmark   = "v1.0.0"
	Encode      = "v1.1.0"
	Analyze     = "v1.1.0"
	Fold        = "v1.0.0"
	Serve       = "v0.3.0"
	Linkers     = "v1.0.0"
	SanityCheck = "v1.0.0"
)
