// Scholarwise - Research Discovery Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scholarwise

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/scholarwise/internal/metrics"
	"github.com/tomtom215/scholarwise/internal/recommend"
)

// Key prefixes for BadgerDB storage
const (
	itemKeyPrefix        = "item:"
	itemDateKeyPrefix    = "item_date:"
	profileKeyPrefix     = "profile:"
	interactionKeyPrefix = "interaction:"

	interactionSeqKey = "seq:interaction"
)

// seqBandwidth is how many sequence numbers are leased from badger at a time.
const seqBandwidth = 128

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// Options configures a BadgerStore.
type Options struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Everything is lost on Close.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool
}

// BadgerStore keeps the article catalog, user profiles and the interaction
// log in BadgerDB as JSON values. It implements recommend.DataProvider.
//
// Key layout:
//
//	item:<id>                          Item
//	item_date:<publication nanos>:<id> empty, newest-first candidate index
//	profile:<userID>                   UserProfile
//	interaction:<timestamp nanos>:<seq> Interaction
type BadgerStore struct {
	db     *badger.DB
	seq    *badger.Sequence
	logger zerolog.Logger
}

var _ recommend.DataProvider = (*BadgerStore)(nil)

// Open opens (or creates) a BadgerStore.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(opts Options, logger zerolog.Logger) (*BadgerStore, error) {
	logger = logger.With().Str("component", "store").Logger()

	bopts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts = bopts.
		WithSyncWrites(opts.SyncWrites).
		WithLogger(badgerLogger{logger: logger})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	seq, err := db.GetSequence([]byte(interactionSeqKey), seqBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("get interaction sequence: %w", err)
	}

	logger.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Msg("store opened")

	return &BadgerStore{db: db, seq: seq, logger: logger}, nil
}

// Close releases the sequence lease and closes the database.
func (s *BadgerStore) Close() error {
	if err := s.seq.Release(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to release interaction sequence")
	}
	return s.db.Close()
}

// Ping checks that the database accepts reads.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New("store is closed")
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// PutItem validates and stores a catalog item, replacing any previous
// version and its date index entry.
//
//nolint:gocritic // hugeParam: Item is stored by value
func (s *BadgerStore) PutItem(ctx context.Context, item recommend.Item) (err error) {
	defer observe("put_item", "item", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := recommend.ValidateItem("item", item); err != nil {
		return err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		var prev recommend.Item
		switch err := getJSON(txn, itemKey(item.ID), &prev); {
		case err == nil:
			if !prev.PublicationDate.Equal(item.PublicationDate) {
				if err := txn.Delete(itemDateKey(prev.PublicationDate, prev.ID)); err != nil {
					return fmt.Errorf("delete stale date index: %w", err)
				}
			}
		case !errors.Is(err, ErrNotFound):
			return err
		}

		if err := txn.Set(itemKey(item.ID), data); err != nil {
			return fmt.Errorf("set item: %w", err)
		}
		if err := txn.Set(itemDateKey(item.PublicationDate, item.ID), nil); err != nil {
			return fmt.Errorf("set date index: %w", err)
		}
		return nil
	})
}

// PutProfile validates and stores a user profile.
//
//nolint:gocritic // hugeParam: UserProfile is stored by value
func (s *BadgerStore) PutProfile(ctx context.Context, profile recommend.UserProfile) (err error) {
	defer observe("put_profile", "profile", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := recommend.ValidateProfile("profile", profile); err != nil {
		return err
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(profile.UserID), data)
	})
}

// AppendInteraction validates an interaction and appends it to the log.
// Entries are immutable once written.
//
//nolint:gocritic // hugeParam: Interaction is stored by value
func (s *BadgerStore) AppendInteraction(ctx context.Context, inter recommend.Interaction) (err error) {
	defer observe("append_interaction", "interaction", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := recommend.ValidateInteraction("interaction", inter); err != nil {
		return err
	}

	data, err := json.Marshal(inter)
	if err != nil {
		return fmt.Errorf("marshal interaction: %w", err)
	}

	seq, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("next interaction sequence: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(interactionKey(inter.Timestamp, seq), data)
	}); err != nil {
		return fmt.Errorf("set interaction: %w", err)
	}

	metrics.RecordInteraction(inter.Type.String())
	return nil
}

// GetCandidates returns at most limit items ordered by publication date,
// newest first. The catalog is shared, so userID does not narrow the result.
func (s *BadgerStore) GetCandidates(ctx context.Context, _ string, limit int) (items []recommend.Item, err error) {
	defer observe("get_candidates", "item", time.Now(), &err)

	if limit <= 0 {
		return []recommend.Item{}, nil
	}

	items = make([]recommend.Item, 0, limit)
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(itemDateKeyPrefix)
		for it.Seek(seekLast(prefix)); it.ValidForPrefix(prefix) && len(items) < limit; it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			id := idFromDateKey(string(it.Item().Key()))
			var item recommend.Item
			switch err := getJSON(txn, itemKey(id), &item); {
			case errors.Is(err, ErrNotFound):
				s.logger.Warn().Str("article_id", id).Msg("date index points at a missing item")
				continue
			case err != nil:
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	return items, nil
}

// GetUserProfile returns the stored profile or recommend.ErrProfileNotFound.
func (s *BadgerStore) GetUserProfile(ctx context.Context, userID string) (profile *recommend.UserProfile, err error) {
	defer observe("get_profile", "profile", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var p recommend.UserProfile
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, profileKey(userID), &p)
	})
	if errors.Is(err, ErrNotFound) {
		return nil, recommend.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// GetInteractions returns at most limit interactions with a timestamp at or
// after since, newest first.
func (s *BadgerStore) GetInteractions(ctx context.Context, since time.Time, limit int) (out []recommend.Interaction, err error) {
	defer observe("get_interactions", "interaction", time.Now(), &err)

	if limit <= 0 {
		return []recommend.Interaction{}, nil
	}

	out = make([]recommend.Interaction, 0, min(limit, 1024))
	floor := interactionKeyPrefix + sortableTime(since)

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(interactionKeyPrefix)
		for it.Seek(seekLast(prefix)); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			if string(item.Key()) < floor {
				break
			}

			var inter recommend.Interaction
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &inter)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", item.Key(), err)
			}
			out = append(out, inter)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get interactions: %w", err)
	}
	return out, nil
}

// GetItems returns the stored items for ids. Unknown IDs are skipped.
func (s *BadgerStore) GetItems(ctx context.Context, ids []string) (items map[string]recommend.Item, err error) {
	defer observe("get_items", "item", time.Now(), &err)

	items = make(map[string]recommend.Item, len(ids))
	err = s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}

			var item recommend.Item
			switch err := getJSON(txn, itemKey(id), &item); {
			case errors.Is(err, ErrNotFound):
				continue
			case err != nil:
				return err
			}
			items[id] = item
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return items, nil
}

// CountKeys counts the keys under each data prefix and publishes the counts
// on the store_keys gauge.
func (s *BadgerStore) CountKeys(ctx context.Context) (counts map[string]int, err error) {
	defer observe("count_keys", "all", time.Now(), &err)

	prefixes := map[string]string{
		"item":        itemKeyPrefix,
		"profile":     profileKeyPrefix,
		"interaction": interactionKeyPrefix,
	}

	counts = make(map[string]int, len(prefixes))
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for label, prefix := range prefixes {
			n := 0
			p := []byte(prefix)
			for it.Seek(p); it.ValidForPrefix(p); it.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				n++
			}
			counts[label] = n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count keys: %w", err)
	}

	for label, n := range counts {
		metrics.StoreKeys.WithLabelValues(label).Set(float64(n))
	}
	return counts, nil
}

// RunValueLogGC reclaims value log space. It is a no-op for in-memory stores.
func (s *BadgerStore) RunValueLogGC(discardRatio float64) error {
	if s.db.Opts().InMemory {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// getJSON reads key and decodes its JSON value into v.
func getJSON(txn *badger.Txn, key []byte, v interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func itemKey(id string) []byte {
	return []byte(itemKeyPrefix + id)
}

func itemDateKey(published time.Time, id string) []byte {
	return []byte(itemDateKeyPrefix + sortableTime(published) + ":" + id)
}

func profileKey(userID string) []byte {
	return []byte(profileKeyPrefix + userID)
}

func interactionKey(ts time.Time, seq uint64) []byte {
	return []byte(interactionKeyPrefix + sortableTime(ts) + ":" + fmt.Sprintf("%020d", seq))
}

// idFromDateKey extracts the article ID from an item_date key. IDs may
// themselves contain colons, so only the first separator after the
// timestamp is significant.
func idFromDateKey(key string) string {
	rest := strings.TrimPrefix(key, itemDateKeyPrefix)
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

// sortableTime renders t as a fixed-width decimal so that lexical key order
// matches chronological order. Instants before the Unix epoch sort first.
func sortableTime(t time.Time) string {
	nanos := t.UnixNano()
	if nanos < 0 {
		nanos = 0
	}
	return fmt.Sprintf("%020d", nanos)
}

// seekLast returns a key positioned after every key with prefix, for
// reverse iteration.
func seekLast(prefix []byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = 0xFF
	return out
}

// observe records duration and failure of a store operation.
func observe(operation, prefix string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, context.Canceled) || recommend.IsInvalidInput(err) {
		err = nil
	}
	metrics.RecordStoreOperation(operation, prefix, time.Since(start), err)
}
