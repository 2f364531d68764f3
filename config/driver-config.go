package config

type DriverConfig struct {
	// Echo prints every statement before its result
	Echo bool
	// StopOnError aborts the script on the first failed command
	StopOnError bool
	// FailFast makes cursors detect modifications made behind their back
	FailFast bool
	// Debug logs every rejected list operation
	Debug bool
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Echo:        false,
		StopOnError: false,
		FailFast:    true,
		Debug:       false,
	}
}
