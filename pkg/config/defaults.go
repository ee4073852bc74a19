package config

import "time"

const (
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
	StoreBackendMongo  = "mongo"
	StoreBackendMemory = "memory"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStoreBackend = StoreBackendFile
	DefaultDataDir      = "./data"

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaTopic = "roomly.mutations"

	DefaultSessionSecret = "roomly-dev-secret"
	DefaultSessionTTL    = 24 * time.Hour

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
