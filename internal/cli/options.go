package cli

import "time"

// EngineOptions configures how a command builds its engine.
type EngineOptions struct {
	MachinePath string
	Debug       bool
	LogFile     string
	RedisAddr   string
	CacheTTL    time.Duration
}

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	EngineOptions
	WordsPath   string
	OutputPath  string
	Concurrency int
}

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	EngineOptions
	Port int
}

// MCPOptions contains the configuration for the mcp command.
type MCPOptions struct {
	EngineOptions
	Transport string
	Port      int
}

// StdoutPath selects standard output for --output.
const StdoutPath = "-"
