package redisstore

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storeregistry"
)

var (
	flagAddr     string
	flagPassword string
	flagDB       int
	flagPrefix   string
	flagTimeout  time.Duration
)

func init() {
	storeregistry.MustRegister(storeregistry.Backend{
		Name:        "redis",
		Description: "redis-backed store",
		Usage:       storeregistry.UsageCLI | storeregistry.UsageDaemon,
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagAddr, "redis-addr", "", "redis address host:port (for --store=redis)")
			fs.StringVar(&flagPassword, "redis-password", "", "redis password (for --store=redis)")
			fs.IntVar(&flagDB, "redis-db", 0, "redis database number (for --store=redis)")
			fs.StringVar(&flagPrefix, "redis-prefix", "", "key prefix when sharing a redis database")
			fs.DurationVar(&flagTimeout, "redis-timeout", 0, "per-command timeout; 0 uses client defaults")
		},
		Open: func() (storage.Store, func() error, error) {
			addr := strings.TrimSpace(flagAddr)
			if addr == "" {
				return nil, nil, fmt.Errorf("missing --redis-addr")
			}
			rdb := redis.NewClient(&redis.Options{
				Addr:     addr,
				Password: flagPassword,
				DB:       flagDB,
			})
			s := New(rdb)
			s.Prefix = flagPrefix
			s.Timeout = flagTimeout
			return s, rdb.Close, nil
		},
	})
}
