package boltdb

import (
	"context"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/moralisweb3/docschat/internal/docschat/service/chat/entity"
	"github.com/moralisweb3/docschat/pkg/utils/json"
)

// TranscriptStore persists completed chat transcripts in BoltDB.
type TranscriptStore struct {
	boltDB *bolt.DB
}

// NewTranscriptStore creates a new TranscriptStore instance.
func NewTranscriptStore(db *DB) *TranscriptStore {
	return &TranscriptStore{boltDB: db.Bolt()}
}

func (s *TranscriptStore) Create(_ context.Context, transcript *entity.Transcript) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTranscripts)
		data, err := json.Marshal(transcript)
		if err != nil {
			return fmt.Errorf("failed to marshal transcript: %w", err)
		}
		return b.Put([]byte(transcript.ID), data)
	})
}

func (s *TranscriptStore) Get(_ context.Context, id string) (*entity.Transcript, error) {
	var transcript entity.Transcript
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTranscripts)
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("transcript %q not found", id)
		}
		return json.Unmarshal(data, &transcript)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript %q: %w", id, err)
	}
	return &transcript, nil
}

func (s *TranscriptStore) List(_ context.Context) ([]*entity.Transcript, error) {
	var transcripts []*entity.Transcript
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTranscripts)
		return b.ForEach(func(k, v []byte) error {
			var transcript entity.Transcript
			if err := json.Unmarshal(v, &transcript); err != nil {
				return fmt.Errorf("failed to unmarshal transcript: %w", err)
			}
			transcripts = append(transcripts, &transcript)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}
	return transcripts, nil
}
