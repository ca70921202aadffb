package cache

import (
	"crypto/tls"
	"net"
	"os"
	"sync"

	"taskhive/internal/config"
	"taskhive/internal/util/logger"

	"github.com/valkey-io/valkey-go"
)

var (
	once   sync.Once
	client valkey.Client
)

// GetCache returns the process-wide valkey client. The connection is
// established lazily on first use.
func GetCache() valkey.Client {
	once.Do(connect)
	return client
}

func connect() {
	env := config.GetEnv()

	option := valkey.ClientOption{
		InitAddress: []string{net.JoinHostPort(env.ValkeyHost, env.ValkeyPort)},
		Username:    env.ValkeyUsername,
		Password:    env.ValkeyPassword,
	}
	if env.ValkeyIsSsl {
		option.TLSConfig = &tls.Config{ServerName: env.ValkeyHost}
	}

	c, err := valkey.NewClient(option)
	if err != nil {
		logger.GetLogger().Error("Failed to connect to valkey", "error", err)
		os.Exit(1)
	}

	client = c
}
