package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/nikmargit/blog/app/enum"
	"github.com/nikmargit/blog/app/server"
	"github.com/nikmargit/blog/app/server/web"
	"github.com/nikmargit/blog/app/site"
	"github.com/nikmargit/blog/app/store"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	Prefs struct {
		Backend   string `long:"backend" env:"BACKEND" default:"cookie" choice:"cookie" choice:"db" description:"color mode storage backend"`
		DB        string `long:"db" env:"DB" default:"blog.db" description:"database URL (sqlite file or postgres://...)"`
		CacheSize int    `long:"cache-size" env:"CACHE_SIZE" default:"1000" description:"max cached preferences, 0 disables cache"`
	} `group:"prefs" namespace:"prefs" env-namespace:"BLOG_PREFS"`

	Debug bool `long:"dbg" env:"BLOG_DEBUG" description:"debug mode"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	SharedOptions

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /blog)"`
		SecureCookies   bool          `long:"secure-cookies" env:"SECURE_COOKIES" description:"set Secure flag on preference cookies"`
		BodyLimit       int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec  int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"BLOG_SERVER"`

	Site struct {
		Config string `long:"config" env:"CONFIG" description:"site metadata file (yaml), defaults used if empty"`
		Watch  bool   `long:"watch" env:"WATCH" description:"reload site metadata on change"`
	} `group:"site" namespace:"site" env-namespace:"BLOG_SITE"`

	Retention struct {
		Period   time.Duration `long:"period" env:"PERIOD" description:"drop db preferences not updated within period, 0 keeps all"`
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"1h" description:"how often stale preferences are dropped"`
	} `group:"retention" namespace:"retention" env-namespace:"BLOG_RETENTION"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	backend, err := enum.ParseBackend(s.Prefs.Backend)
	if err != nil {
		return fmt.Errorf("invalid preference backend: %w", err)
	}

	log.Printf("[INFO] starting blog server on %s, color mode stored in %s", s.Server.Address, backend)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	siteMeta, err := site.New(s.Site.Config)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	if s.Site.Watch && s.Site.Config != "" {
		if watchErr := siteMeta.StartWatcher(ctx); watchErr != nil {
			return fmt.Errorf("failed to start site config watcher: %w", watchErr)
		}
		log.Printf("[INFO] site config hot-reload enabled")
	}

	var prefs web.PrefStore // nil for cookie backend
	if backend == enum.BackendDB {
		prefStore, closeFn, openErr := s.openPrefs()
		if openErr != nil {
			return openErr
		}
		defer closeFn()
		prefs = prefStore

		if s.Retention.Period > 0 {
			pruner := server.NewPruner(prefStore, server.PrunerConfig{Interval: s.Retention.Interval, Retention: s.Retention.Period})
			go pruner.Run(ctx)
		}
	}

	srv, err := server.New(prefs, siteMeta, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		Backend:         backend,
		SecureCookies:   s.Server.SecureCookies,
		BodySizeLimit:   s.Server.BodyLimit,
		RequestsPerSec:  s.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openPrefs opens the preference database, wrapped with a cache unless disabled.
func (o *SharedOptions) openPrefs() (store.Interface, func(), error) {
	db, err := store.New(o.Prefs.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}
	if o.Prefs.CacheSize <= 0 {
		return db, closeFn, nil
	}
	cached, err := store.NewCached(db, o.Prefs.CacheSize)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return cached, closeFn, nil
}

// PruneCmd implements the prune subcommand
type PruneCmd struct {
	SharedOptions

	OlderThan time.Duration `long:"older-than" required:"true" description:"remove preferences not updated within this period"`
}

// Execute runs the prune command
func (p *PruneCmd) Execute(_ []string) error {
	setupLogs(p.Debug)
	if p.OlderThan <= 0 {
		return fmt.Errorf("older-than must be positive, got %v", p.OlderThan)
	}

	st, err := store.New(p.Prefs.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	before, err := st.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count preferences: %w", err)
	}

	cutoff := time.Now().Add(-p.OlderThan)
	removed, err := st.Prune(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune preferences: %w", err)
	}

	log.Printf("[INFO] removed %d of %d preferences not updated since %s", removed, before, cutoff.Format(time.RFC3339))
	fmt.Printf("removed %d of %d preferences\n", removed, before)
	return nil
}
