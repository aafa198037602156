package contextkeys

// Custom type to avoid collisions with other packages' context keys
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB is stored
const DBContextKey = contextKey("db")
