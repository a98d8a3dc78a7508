package searchtool

import (
	"github.com/scottcagno/kmp/pkg/cache"
	"github.com/scottcagno/kmp/pkg/logger"
)

const (
	defaultName       = "kmp"
	defaultVersion    = "0.1.0"
	defaultCacheSize  = cache.DefaultSize
	defaultMaxTextLen = 64 << 20 // 64 MB
)

// ServerConfig holds configuration settings for the tool server
type ServerConfig struct {
	Name       string         // implementation name reported to clients
	Version    string         // implementation version reported to clients
	CacheSize  int            // number of compiled patterns kept
	MaxTextLen int            // longest text or pattern accepted, in bytes
	Logger     *logger.Logger // logger
}

// checkServerConfig fills in any missing options
func checkServerConfig(conf *ServerConfig) *ServerConfig {
	if conf == nil {
		conf = new(ServerConfig)
	}
	if conf.Name == "" {
		conf.Name = defaultName
	}
	if conf.Version == "" {
		conf.Version = defaultVersion
	}
	if conf.CacheSize <= 0 {
		conf.CacheSize = defaultCacheSize
	}
	if conf.MaxTextLen <= 0 {
		conf.MaxTextLen = defaultMaxTextLen
	}
	if conf.Logger == nil {
		conf.Logger = logger.DefaultLogger
	}
	return conf
}
