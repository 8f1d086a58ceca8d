package feeds

// Config holds the object naming of dataset feeds.
type Config struct {
	// Prefix is prepended to every feed object name.
	Prefix string `mapstructure:"prefix" default:"feeds/"`
	// Extension is appended to the dataset name.
	Extension string `mapstructure:"extension" default:".json"`
	// CacheTTLSeconds is how long a bucket listing is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30" validate:"gte=0"`
}
