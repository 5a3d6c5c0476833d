package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache stores parsed configuration structs keyed by their type name.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newTypeCache() *typeCache {
	return &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *typeCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *typeCache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *typeCache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *typeCache) forget(key string) {
	c.mu.Lock()
	delete(c.values, key)
	delete(c.onces, key)
	c.mu.Unlock()
}

func (c *typeCache) reset() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
	c.mu.Unlock()
}

var (
	cache = newTypeCache()

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v using `env` struct tags.
//
// The default .env file in the working directory is read on the first call,
// if present. Each configuration type is parsed once; later calls with the
// same type are served from the cache.
//
// Example:
//
//	type MongoConfig struct {
//		URI      string `env:"MONGO_URI,required"`
//		Database string `env:"MONGO_DATABASE"`
//	}
//
//	var cfg MongoConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := cache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	cache.once(key).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Let the next call try again with a fresh environment.
			cache.forget(key)
			return
		}
		cache.set(key, *v)
	})
	if err != nil {
		return err
	}

	cached, ok := cache.get(key)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
// Use it only during application startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value for T and parses the environment again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cache.forget(typeKey[T]())
	return Load(v)
}

// ResetCache clears every cached configuration. Intended for tests.
func ResetCache() {
	cache.reset()
}

// LoadEnv reads the given .env files into the process environment.
// Later files override earlier ones. With no paths, the default .env is read.
// Variables already present in the environment are overridden as well, so
// an explicitly requested file always wins.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
