// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout. Entity keys carry a zero-padded catalog index so iteration
// order equals catalog order.
const (
	keyPrefix         = "catalog/"
	metaKey           = keyPrefix + "meta"
	destinationPrefix = keyPrefix + "destination/"
	listingPrefix     = keyPrefix + "listing/"
)

// snapshotMeta is stored under metaKey.
type snapshotMeta struct {
	Source       string    `json:"source"`
	SavedAt      time.Time `json:"saved_at"`
	Destinations int       `json:"destinations"`
	Listings     int       `json:"listings"`
	Categories   []string  `json:"categories"`
	Labels       Labels    `json:"labels"`
}

// Store persists the last good catalog in BadgerDB so the service can start
// when the catalog file is unavailable.
type Store struct {
	db     *badger.DB
	ownsDB bool
}

// OpenStore opens (or creates) a BadgerDB at path. An empty path opens an
// in-memory database.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	return &Store{db: db, ownsDB: true}, nil
}

// NewStore wraps an already open database. Close will not close db.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close releases the database if the store opened it.
func (s *Store) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

// Save replaces the persisted snapshot with c.
func (s *Store) Save(ctx context.Context, c *Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.clear(); err != nil {
		return fmt.Errorf("clear catalog snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range c.destinations {
		data, err := json.Marshal(&c.destinations[i])
		if err != nil {
			return fmt.Errorf("marshal destination %s: %w", c.destinations[i].ID, err)
		}
		if err := wb.Set(indexKey(destinationPrefix, i), data); err != nil {
			return fmt.Errorf("write destination %s: %w", c.destinations[i].ID, err)
		}
	}
	for i := range c.listings {
		data, err := json.Marshal(&c.listings[i])
		if err != nil {
			return fmt.Errorf("marshal listing %s: %w", c.listings[i].ID, err)
		}
		if err := wb.Set(indexKey(listingPrefix, i), data); err != nil {
			return fmt.Errorf("write listing %s: %w", c.listings[i].ID, err)
		}
	}

	meta, err := json.Marshal(snapshotMeta{
		Source:       c.source,
		SavedAt:      time.Now().UTC(),
		Destinations: len(c.destinations),
		Listings:     len(c.listings),
		Categories:   c.categories,
		Labels:       c.labels,
	})
	if err != nil {
		return fmt.Errorf("marshal catalog meta: %w", err)
	}
	// Meta is written last; Load treats a snapshot without meta as absent.
	if err := wb.Set([]byte(metaKey), meta); err != nil {
		return fmt.Errorf("write catalog meta: %w", err)
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush catalog snapshot: %w", err)
	}
	return nil
}

// Load rebuilds the persisted catalog. Returns ErrNoSnapshot when nothing was saved.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	var (
		meta snapshotMeta
		doc  Document
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("get catalog meta: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("decode catalog meta: %w", err)
		}

		doc.Destinations = make([]Entity, 0, meta.Destinations)
		if err := scanPrefix(ctx, txn, destinationPrefix, func(val []byte) error {
			var e Entity
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			doc.Destinations = append(doc.Destinations, e)
			return nil
		}); err != nil {
			return fmt.Errorf("scan destinations: %w", err)
		}

		doc.Listings = make([]Listing, 0, meta.Listings)
		if err := scanPrefix(ctx, txn, listingPrefix, func(val []byte) error {
			var l Listing
			if err := json.Unmarshal(val, &l); err != nil {
				return err
			}
			doc.Listings = append(doc.Listings, l)
			return nil
		}); err != nil {
			return fmt.Errorf("scan listings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(doc.Destinations) != meta.Destinations || len(doc.Listings) != meta.Listings {
		return nil, fmt.Errorf("catalog snapshot incomplete: have %d/%d destinations, %d/%d listings",
			len(doc.Destinations), meta.Destinations, len(doc.Listings), meta.Listings)
	}

	doc.Categories = meta.Categories
	doc.Labels = meta.Labels
	return New(&doc, "store:"+meta.Source)
}

// clear deletes every key of the previous snapshot, meta first.
func (s *Store) clear() error {
	keys := [][]byte{[]byte(metaKey)}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			if key := it.Item().KeyCopy(nil); string(key) != metaKey {
				keys = append(keys, key)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return err
		}
	}
	return wb.Flush()
}

func scanPrefix(ctx context.Context, txn *badger.Txn, prefix string, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

func indexKey(prefix string, i int) []byte {
	return []byte(fmt.Sprintf("%s%08d", prefix, i))
}
