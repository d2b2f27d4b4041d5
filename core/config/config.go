package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvErr  error

	cache sync.Map // reflect.Type -> any (a copy of the loaded value)
)

// Load populates cfg from the environment. The first successful load of a
// given type is cached; later calls for the same type copy the cached value.
// A .env file in the working directory is read once, before the first load,
// and never overrides variables already present in the process environment.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := loadDotenv(); err != nil {
		return err
	}

	if err := Parse(cfg); err != nil {
		return err
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is like Load but panics on error.
// Intended for process startup where there is nothing sensible to fall back to.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse populates cfg from the current process environment without caching
// and without reading .env files.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if err := env.Parse(cfg); err != nil {
		return translate(err, reflect.TypeFor[T]())
	}
	return nil
}

// Reset drops all cached configurations. Tests use it to reload a type
// after changing the environment.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func loadDotenv() error {
	dotenvOnce.Do(func() {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("%w: %v", ErrDotenv, err)
		}
	})
	return dotenvErr
}

// translate maps caarlos0/env failures onto the package sentinels, naming the
// environment variable each failure belongs to.
func translate(err error, typ reflect.Type) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	errs := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var (
			notSet   env.EnvVarIsNotSetError
			empty    env.EmptyEnvVarError
			parseErr env.ParseError
		)
		switch {
		case errors.As(e, &notSet):
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingVariable, notSet.Key))
		case errors.As(e, &empty):
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingVariable, empty.Key))
		case errors.As(e, &parseErr):
			name := envKey(typ, parseErr.Name, "")
			if name == "" {
				name = parseErr.Name
			}
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, parseErr.Err))
		default:
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidValue, e))
		}
	}
	return errors.Join(errs...)
}

// envKey finds the environment variable bound to the struct field with the
// given name, descending into nested structs and honoring envPrefix.
func envKey(typ reflect.Type, field, prefix string) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return ""
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)
		tag := sf.Tag.Get("env")
		key, _, _ := strings.Cut(tag, ",")

		if sf.Name == field && key != "" {
			return prefix + key
		}

		ft := sf.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && key == "" {
			if found := envKey(ft, field, prefix+sf.Tag.Get("envPrefix")); found != "" {
				return found
			}
		}
	}
	return ""
}
