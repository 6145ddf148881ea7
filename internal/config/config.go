package config // package config loads service configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time parses duration values
)

// Config holds the runtime configuration shared by the live-easy
// services.  Each field corresponds to an environment variable.  Every
// process loads the same structure; fields that a given service does
// not use are simply ignored (the gateway, for example, never opens a
// MySQL connection).
type Config struct {
    Env           string        // application environment (e.g. "dev", "prod")
    Port          string        // HTTP port to listen on
    DBUser        string        // database username
    DBPass        string        // database password (optional)
    DBHost        string        // database host address
    DBPort        string        // database port number
    DBName        string        // database name
    JWTSecret     string        // secret used to sign bearer tokens
    AccessTTLMin  int           // access token time-to-live in minutes
    BcryptCost    int           // bcrypt cost for password hashing
    AuthURL       string        // base URL of the auth service (gateway proxy target)
    LoadURL       string        // base URL of the load service (gateway proxy + booking client)
    BookingURL    string        // base URL of the booking service (gateway proxy target)
    ClientTimeout time.Duration // timeout for cross-service HTTP calls
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the process to exit with a fatal log message.
// Database variables are required only when withDB is true so that
// the gateway can start without a database.
func Load(withDB bool) Config {
    cfg := Config{
        Env:           must("APP_ENV"),    // environment (dev/test/prod)
        Port:          must("APP_PORT"),   // port to bind the HTTP server
        JWTSecret:     must("JWT_SECRET"), // secret used for signing tokens
        AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 60),
        BcryptCost:    envInt("BCRYPT_COST", 10),
        AuthURL:       envStr("AUTH_SERVICE_URL", "http://localhost:8081"),
        LoadURL:       envStr("LOAD_SERVICE_URL", "http://localhost:8082"),
        BookingURL:    envStr("BOOKING_SERVICE_URL", "http://localhost:8083"),
        ClientTimeout: envDur("SERVICE_CLIENT_TIMEOUT", 5*time.Second),
    }
    if withDB {
        cfg.DBUser = must("DB_USER")
        cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = must("DB_PORT")
        cfg.DBName = must("DB_NAME")
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the process logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func envStr(k, d string) string {
    if v := os.Getenv(k); v != "" {
        return v
    }
    return d
}

func envInt(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return d
}

func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if dur, err := time.ParseDuration(v); err == nil {
        return dur
    }
    return d
}
