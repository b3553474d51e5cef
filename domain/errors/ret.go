package errors

// The Application return code errors
const (
	RetBadCommandLineError  = 2
	RetLoadEnvFileError     = 9
	RetRenderConfigError    = 10
	RetWriteConfigError     = 11
	RetConnectDatabaseError = 12
)
