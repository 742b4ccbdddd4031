package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultUploadDir is where uploaded resumes are stored.
	DefaultUploadDir = "resumes"

	// DefaultGitHubAPIURL is empty, meaning the public api.github.com.
	DefaultGitHubAPIURL = ""

	// DefaultGitHubWebURL is the site profile pages are read from.
	DefaultGitHubWebURL = "https://github.com"

	// DefaultChartLibraryURL is the script URL of the charting library used on result pages.
	DefaultChartLibraryURL = "https://cdn.jsdelivr.net/npm/chart.js"
)
