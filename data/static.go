package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Default range reported for items without an explicit one.
const (
	DefaultMin = 0
	DefaultMax = 100
)

// Item is one entry of a Static snapshot.
type Item struct {
	Value     any      `json:"value"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	ValueList []string `json:"valueList,omitempty"`
}

// UnmarshalJSON accepts either a full item object or a bare value.
func (it *Item) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		type item Item
		var x item
		if err := json.Unmarshal(b, &x); err != nil {
			return err
		}
		*it = Item(x)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*it = Item{Value: v}
	if list, ok := v.([]any); ok {
		it.ValueList = make([]string, len(list))
		for i, e := range list {
			it.ValueList[i] = Format(e)
		}
	}
	return nil
}

// Static is a Source over an in-memory map. It is safe for concurrent
// use.
type Static struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewStatic creates an empty snapshot.
func NewStatic() *Static {
	return &Static{items: make(map[string]Item)}
}

// ParseStatic reads a snapshot from a JSON object mapping references to
// items or bare values.
func ParseStatic(r io.Reader) (*Static, error) {
	items := make(map[string]Item)
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("data: decode snapshot: %w", err)
	}
	return &Static{items: items}, nil
}

// LoadStatic reads a snapshot from a JSON file.
func LoadStatic(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	defer f.Close()
	return ParseStatic(f)
}

// Set stores v under ref, keeping its range and list.
func (s *Static) Set(ref string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[ref]
	it.Value = v
	s.items[ref] = it
}

// SetRange stores the range of ref.
func (s *Static) SetRange(ref string, lo, hi float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[ref]
	it.Min, it.Max = &lo, &hi
	s.items[ref] = it
}

// SetValueList stores the value list of ref.
func (s *Static) SetValueList(ref string, list []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[ref]
	it.ValueList = append([]string(nil), list...)
	s.items[ref] = it
}

// Refs returns the stored references in sorted order.
func (s *Static) Refs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]string, 0, len(s.items))
	for ref := range s.items {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func (s *Static) item(ref string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[ref]
	return it, ok
}

func (s *Static) Get(ref string) any {
	it, _ := s.item(ref)
	return it.Value
}

func (s *Static) GetBool(ref string) bool {
	return Bool(s.Get(ref))
}

func (s *Static) GetMin(ref string) float64 {
	if it, ok := s.item(ref); ok && it.Min != nil {
		return *it.Min
	}
	return DefaultMin
}

func (s *Static) GetMax(ref string) float64 {
	if it, ok := s.item(ref); ok && it.Max != nil {
		return *it.Max
	}
	return DefaultMax
}

// GetValueList returns a copy of ref's list.
func (s *Static) GetValueList(ref string) []string {
	it, _ := s.item(ref)
	if it.ValueList == nil {
		return nil
	}
	return append([]string(nil), it.ValueList...)
}

var _ Source = (*Static)(nil)
