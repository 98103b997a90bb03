package store

import (
	"time"

	"chargemap/internal/platform/config"
)

// Driver names the backend that holds stations and ratings
type Driver string

// supported drivers
const (
	DriverPG        Driver = "pg"
	DriverMongo     Driver = "mongo"
	DriverFirestore Driver = "firestore"
	DriverMemory    Driver = "memory"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	Driver  Driver

	PG        PGConfig
	Mongo     MongoConfig
	Firestore FirestoreConfig
	CH        CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled   bool
	URL       string
	MaxConns  int32
	LogSQL    bool
	SlowQuery time.Duration
}

// MongoConfig configures the mongo client
type MongoConfig struct {
	Enabled  bool
	URI      string
	Database string
}

// FirestoreConfig configures the firestore client
// an empty Credentials path falls back to application default credentials
type FirestoreConfig struct {
	Enabled     bool
	ProjectID   string
	Credentials string
}

// CHConfig configures the clickhouse event sink
type CHConfig struct {
	Enabled bool
	URL     string
	Table   string
}

// DefaultMongoDatabase is used when SERVICE_MONGO_DATABASE is unset
const DefaultMongoDatabase = "berlin_bezirke_db"

// FromConf reads SERVICE_* keys from c, e.g. config.New().Prefix("SERVICE_")
// only the selected driver is enabled; clickhouse is independent of it
func FromConf(c config.Conf, appName string) Config {
	drv := Driver(c.MayEnum("STORE_DRIVER", string(DriverMemory),
		string(DriverPG), string(DriverMongo), string(DriverFirestore), string(DriverMemory)))

	cfg := Config{AppName: appName, Driver: drv}

	pgc := c.Prefix("PGSQL_")
	cfg.PG = PGConfig{
		Enabled:   drv == DriverPG,
		MaxConns:  int32(pgc.MayIntIn("MAX_CONNS", 8, 1, 256)),
		LogSQL:    pgc.MayBool("LOG_SQL", false),
		SlowQuery: pgc.MayDuration("SLOW_QUERY", 200*time.Millisecond),
	}
	if cfg.PG.Enabled {
		cfg.PG.URL = pgc.MustString("DBURL")
	}

	mc := c.Prefix("MONGO_")
	cfg.Mongo = MongoConfig{
		Enabled:  drv == DriverMongo,
		Database: mc.MayString("DATABASE", DefaultMongoDatabase),
	}
	if cfg.Mongo.Enabled {
		cfg.Mongo.URI = mc.MustString("URI")
	}

	fc := c.Prefix("FIRESTORE_")
	cfg.Firestore = FirestoreConfig{
		Enabled:     drv == DriverFirestore,
		Credentials: fc.MayString("CREDENTIALS", ""),
	}
	if cfg.Firestore.Enabled {
		cfg.Firestore.ProjectID = fc.MustString("PROJECT")
	}

	cc := c.Prefix("CLICKHOUSE_")
	cfg.CH = CHConfig{
		Enabled: cc.MayBool("ENABLED", false),
		Table:   cc.MayString("TABLE", "chargemap_events"),
	}
	if cfg.CH.Enabled {
		cfg.CH.URL = cc.MustString("DBURL")
	}
	return cfg
}

// connect guardrails shared by the openers
const (
	maxAttempts    = 20
	pingTimeout    = 3 * time.Second
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)
