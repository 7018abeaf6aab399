package config

// EnvPrefix is handed to envconfig; every field carries an explicit name so the prefix
// only matters for fields added without one.
const EnvPrefix = "TIENDA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	CascadePolicyProceed = "proceed"
	CascadePolicyAbort   = "abort"
)

const (
	EnvAppEnv                  = "TIENDA_APP_ENV"
	EnvPort                    = "TIENDA_APP_PORT"
	EnvDBDSN                   = "TIENDA_DB_DSN"
	EnvDBDriver                = "TIENDA_DB_DRIVER"
	EnvDBHost                  = "TIENDA_DB_HOST"
	EnvDBUser                  = "TIENDA_DB_USER"
	EnvDBName                  = "TIENDA_DB_NAME"
	EnvJWTSecret               = "TIENDA_JWT_SECRET"
	EnvJWTIssuer               = "TIENDA_JWT_ISSUER"
	EnvJWTExpMins              = "TIENDA_JWT_EXPIRATION_MINUTES"
	EnvRedisURL                = "TIENDA_REDIS_URL"
	EnvCategoriesDefaults      = "TIENDA_CATEGORIES_DEFAULTS"
	EnvCategoriesCascadePolicy = "TIENDA_CATEGORIES_CASCADE_POLICY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
