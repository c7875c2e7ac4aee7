package config

type AppConfig struct {
	Targets   []string
	InputFile string

	PortRange  string
	NumThreads int

	OutputFile string
	LogFile    string

	Verbose bool
	Debug   bool
}

var appConfig AppConfig

func GetAppConfig() *AppConfig {
	return &appConfig
}
