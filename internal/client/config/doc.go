// Package config loads runtime configuration for the userdash client
// binaries (REPL and browser shell).
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables, with a .env file (-env-file, default ".env")
//     filling in variables the process does not set.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-b string   base URL of the backend API
//	-d string   path of the local session database
//	-w string   listen address of the browser shell
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "backend_url": "http://127.0.0.1:8080",
//	  "database_path": "userdash.db",
//	  "web_addr": "127.0.0.1:3000",
//	  "shutdown_timeout": "5s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	USERDASH_BACKEND_URL, USERDASH_DB, USERDASH_WEB_ADDR,
//	USERDASH_SHUTDOWN_TIMEOUT, USERDASH_LOG_LEVEL
package config
