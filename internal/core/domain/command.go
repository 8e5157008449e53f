package domain

// Command is an external process invocation.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overrides entries of the inherited environment.
	Env map[string]string
}
