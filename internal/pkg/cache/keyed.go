package cache

import (
	"reflect"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

func NewKeyed[T any](name string) *Keyed[T] {
	return &Keyed[T]{
		name: name,
		c:    cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Keyed is an in-process TTL cache over values of one type.
type Keyed[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	name string

	c *cache.Cache
}

func (c *Keyed[T]) Get(key string, dest *T) error {
	result, ok := c.c.Get(key)
	if !ok {
		return ErrNotFound
	}
	// copy value to dest
	var r reflect.Value
	if reflect.ValueOf(result).Kind() == reflect.Ptr {
		r = reflect.ValueOf(result).Elem()
	} else {
		r = reflect.ValueOf(result)
	}
	reflect.ValueOf(dest).Elem().Set(r)

	return nil
}

func (c *Keyed[T]) Set(key string, value T, expire time.Duration) error {
	c.c.Set(key, value, expire)
	return nil
}

// MutexGetSet gets the value under key and writes it to dest, or if the key does not
// exist, executes valueFunc serially to compute it, stores it with the given expiry
// and writes it to dest.
func (c *Keyed[T]) MutexGetSet(key string, dest *T, valueFunc func() (T, error), expire time.Duration) error {
	err := c.Get(key, dest)
	if err == nil {
		return nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(key, dest, valueFunc, expire)
}

func (c *Keyed[T]) slowMutexGetSet(key string, dest *T, valueFunc func() (T, error), expire time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()

	err := c.Get(key, dest)
	if err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("name", c.name).Str("key", key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return err
	}

	err = c.Set(key, value, expire)
	if err != nil {
		log.Error().Err(err).Str("name", c.name).Str("key", key).Msg("failed to set value in MutexGetSet")
		return err
	}

	*dest = value
	return nil
}
