package ports

// ProcessExecutor runs a command line in a subordinate process and returns
// everything the process wrote to its standard output.
type ProcessExecutor interface {
	Execute(commandLine string) (string, error)
}
