package pdf

const (
	// EngineLibrary runs pdfcpu in-process
	EngineLibrary = "library"

	// EngineCLI shells out to the pdfcpu binary
	EngineCLI = "cli"

	// TempFilePermissions for the CLI engine's working directory
	TempFilePermissions = 0755
)
