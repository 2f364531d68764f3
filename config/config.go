package config

type AppConfig struct {
	DriverConfig *DriverConfig
}

func New() *AppConfig {
	return &AppConfig{
		DriverConfig: NewDriverConfig(),
	}
}
