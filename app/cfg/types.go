package cfg

type Cfg struct {
	// Application configuration
	Port        string
	DBPath      string
	SourcesFile string

	// Provider configuration
	NewsAPIKey   string
	TMDBAPIKey   string
	NewsLanguage string

	// Scheduling configuration
	RefreshInterval  int // seconds
	WorkerCount      int
	SearchDebounceMs int

	// Application metadata
	APIAccessKey string
	UserAgent    string
	Timezone     string
	Debug        bool
	Version      string
}
