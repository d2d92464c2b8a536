package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	MYSQL_DSN     = ""         // MySQL will be used if this is set
	SQLITE_FILE   = "pulse.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS  = "0.0.0.0:8080"
	TLS_DOMAINS   = "" // e.g. "example.com,example2.com"
	TEMPLATES_DIR = "templates"
	MEDIA_DIR     = "media" // Local attachment storage, used if S3_BUCKET is not configured
	S3_BUCKET     = ""      // S3 will be used for attachments if this is set
	S3_REGION     = "us-east-1"
	S3_ENDPOINT   = "" // For S3-compatible stores
	S3_KEY        = ""
	S3_SECRET     = ""
	SESSION_KEY   = "this is a long key" // TODO: require this to be set in production
	CACHE_TTL     = 20                   // Index page cache, in seconds
	DEBUG_MODE    = true
)

func init() {
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("TEMPLATES_DIR", &TEMPLATES_DIR)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_KEY", &S3_KEY)
	readEnvString("S3_SECRET", &S3_SECRET)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("CACHE_TTL", &CACHE_TTL)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
