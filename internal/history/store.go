// ABOUTME: History Store: append-only analysis records with bounded retention.
// ABOUTME: List semantics live here; durability is delegated to the injected KV collaborator.
package history

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/vishlabs/vish/internal/kv"
	"github.com/vishlabs/vish/internal/models"
)

const (
	historyKey = "history"

	// MaxRecords bounds the serialized blob the KV collaborator has to
	// hold. On overflow the oldest (tail) records are discarded.
	MaxRecords = 100
)

// Store persists analysis records most-recent-first through a KV store.
type Store struct {
	kv kv.Store
}

// New creates a history store over the given persistence collaborator.
func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Save stamps and persists a new record at the head of the list, then
// enforces the retention cap. Returns the stored record.
func (s *Store) Save(foodName string, result models.AnalysisResult, imageRef string) (*models.AnalysisRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	rec := models.NewAnalysisRecord(foodName, result, imageRef)
	records = append([]*models.AnalysisRecord{rec}, records...)
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}

	if err := s.persist(records); err != nil {
		return nil, err
	}
	return rec, nil
}

// All returns every stored record, most recent first.
func (s *Store) All() ([]*models.AnalysisRecord, error) {
	return s.load()
}

// Get returns the record with the given identifier, or false when absent.
func (s *Store) Get(id string) (*models.AnalysisRecord, bool, error) {
	records, err := s.load()
	if err != nil {
		return nil, false, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, true, nil
		}
	}
	return nil, false, nil
}

// Delete removes the record with the given identifier. An unknown
// identifier reports false, not an error: nothing to do is not a fault.
func (s *Store) Delete(id string) (bool, error) {
	records, err := s.load()
	if err != nil {
		return false, err
	}

	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := s.persist(records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// UpdateNote replaces the free-text note on the record with the given
// identifier. Reports false when the identifier is absent.
func (s *Store) UpdateNote(id, note string) (bool, error) {
	records, err := s.load()
	if err != nil {
		return false, err
	}

	for _, rec := range records {
		if rec.ID == id {
			rec.Note = note
			if err := s.persist(records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// load reads the serialized list. A missing key means no history yet. A
// blob that cannot be parsed is logged and treated as empty, trading data
// loss for availability; the corrupt value stays in place until the next
// successful save overwrites it.
func (s *Store) load() ([]*models.AnalysisRecord, error) {
	data, err := s.kv.Get(historyKey)
	if err == kv.ErrNotFound {
		return []*models.AnalysisRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var records []*models.AnalysisRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("history: stored blob unreadable, starting empty: %v", err)
		return []*models.AnalysisRecord{}, nil
	}
	return records, nil
}

func (s *Store) persist(records []*models.AnalysisRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}
	if err := s.kv.Set(historyKey, data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
