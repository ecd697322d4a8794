package config

const (
	// DefaultPort is the port the API listens on when PORT is not set.
	DefaultPort = 8000

	// DefaultDatabasePath is the SQLite file the seed-demo command
	// writes to when no DATABASE_URL is given.
	DefaultDatabasePath = "./langlearn.db"
)
