package cmd

const (
	defaultHTTPPort   = "8080"
	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"
	defaultDBUser     = "postgres"
	defaultDBPassword = "password"
	defaultDBName     = "shipping"
	defaultDBSslMode  = "disable"
	defaultLogLevel   = "info"
	defaultAdminID    = "00000000-0000-4000-8000-000000000001"
	defaultAdminName  = "System Administrator"
)
