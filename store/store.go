// Package store keeps generated itinerary PDFs in memory for a limited time
// so they can be downloaded after generation. Nothing is written to disk.
package store

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrNotFound = errors.New("itinerary not found")

type Itinerary struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	PDFData     []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItineraryStore is safe for concurrent use.
type ItineraryStore struct {
	items *cache.Cache
}

// NewItineraryStore creates a store whose entries expire after ttl.
func NewItineraryStore(ttl time.Duration) *ItineraryStore {
	return &ItineraryStore{items: cache.New(ttl, 2*ttl)}
}

func (s *ItineraryStore) Save(i *Itinerary) error {
	if i == nil || i.ID == "" {
		return errors.New("itinerary needs an id")
	}
	s.items.SetDefault(i.ID, i)
	return nil
}

func (s *ItineraryStore) Get(id string) (*Itinerary, error) {
	v, ok := s.items.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*Itinerary), nil
}

// Len counts stored entries, including expired ones not yet cleaned up.
func (s *ItineraryStore) Len() int {
	return s.items.ItemCount()
}
