package redis

import (
	"context"
	"fmt"
	"strings"
)

const scanBatchSize = 200

// RepairResult reports what one reconciliation pass changed for a kind.
type RepairResult struct {
	Restored int // record existed but was missing from the index
	Dropped  int // index entry pointed at a record that no longer exists
}

// RepairIndex reconciles a kind's index list with the records actually stored.
// Ids with a record but no index entry are appended; index entries whose
// record is gone are removed. Safe to run while writes are in flight: a racing
// create is at worst re-appended or re-checked on the next pass.
func (s *Store) RepairIndex(ctx context.Context, kind string) (RepairResult, error) {
	var res RepairResult

	stored, err := s.storedIDs(ctx, kind)
	if err != nil {
		return res, err
	}
	indexed, err := s.client.LRange(ctx, IndexKey(kind), 0, -1).Result()
	if err != nil {
		return res, fmt.Errorf("failed to read %s index: %w", kind, err)
	}

	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	for id := range stored {
		if inIndex[id] {
			continue
		}
		if err := s.client.RPush(ctx, IndexKey(kind), id).Err(); err != nil {
			return res, fmt.Errorf("failed to restore %s %s to index: %w", kind, id, err)
		}
		res.Restored++
	}

	for _, id := range indexed {
		if stored[id] {
			continue
		}
		if err := s.client.LRem(ctx, IndexKey(kind), 0, id).Err(); err != nil {
			return res, fmt.Errorf("failed to drop %s %s from index: %w", kind, id, err)
		}
		res.Dropped++
	}

	return res, nil
}

// storedIDs scans for every record key of a kind and returns the id set.
// The index key itself shares the "<kind>:" prefix and is excluded.
func (s *Store) storedIDs(ctx context.Context, kind string) (map[string]bool, error) {
	prefix := kind + ":"
	ids := make(map[string]bool)

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s records: %w", kind, err)
		}
		for _, key := range keys {
			if key == IndexKey(kind) {
				continue
			}
			ids[strings.TrimPrefix(key, prefix)] = true
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}
