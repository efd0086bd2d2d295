package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	SourcesDir        string
	OutputDir         string
	Port              string
	BaseUrl           string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Publishing configuration (optional)
	PublishURL      string
	PublishUser     string
	PublishPassword string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
