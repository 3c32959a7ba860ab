// Package boltdb persists the rate settings in a single bbolt bucket of JSON
// values, one key per setting, the way a browser keeps them in local storage.
package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	bolt "go.etcd.io/bbolt"
)

const bucketSettings = "settings"

// Keys of the persisted settings.
const (
	KeySavedRate     = "mcurrency.savedRate"
	KeyLiveRateCache = "mcurrency.liveRateCache"
	KeyUseLiveRates  = "mcurrency.useLiveRates"
)

// Store is a bbolt-backed rate store.
type Store struct {
	db *bolt.DB
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*Store)(nil)

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSettings))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucketSettings, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindSavedRate implements ExchangeRateReader.
func (s *Store) FindSavedRate(_ context.Context) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := s.get(KeySavedRate, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// FindLiveRateCache implements ExchangeRateReader.
func (s *Store) FindLiveRateCache(_ context.Context) (*domain.LiveRateCacheEntry, error) {
	var entry domain.LiveRateCacheEntry
	if err := s.get(KeyLiveRateCache, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindUseLiveRates implements ExchangeRateReader.
func (s *Store) FindUseLiveRates(_ context.Context) (bool, bool, error) {
	var useLive bool
	err := s.get(KeyUseLiveRates, &useLive)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, false, nil
		}
		return false, false, err
	}
	return useLive, true, nil
}

// SaveRate implements ExchangeRateWriter.
func (s *Store) SaveRate(_ context.Context, rate domain.ExchangeRate) error {
	return s.put(KeySavedRate, rate)
}

// SaveLiveRateCache implements ExchangeRateWriter.
func (s *Store) SaveLiveRateCache(_ context.Context, entry domain.LiveRateCacheEntry) error {
	return s.put(KeyLiveRateCache, entry)
}

// SaveUseLiveRates implements ExchangeRateWriter.
func (s *Store) SaveUseLiveRates(_ context.Context, useLive bool) error {
	return s.put(KeyUseLiveRates, useLive)
}

func (s *Store) get(key string, v any) error {
	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketSettings)).Get([]byte(key))
		if data == nil {
			return apperrors.NewNotFoundError(key)
		}
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to decode %s: %w", key, err)
		}
		return nil
	})
}

func (s *Store) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSettings)).Put([]byte(key), data)
	})
}
