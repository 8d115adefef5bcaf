package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
)

// The state document maps titles to positional records:
//
//	{
//	    "watched": {"Inception": ["Inception", [28, 878], 9.0]},
//	    "planned": {"Dune": ["Dune", [878, 12]]}
//	}
//
// Object key order carries the insertion order of each list.

const indent = "    "

// encodeState renders the state document with keys in insertion order
func encodeState(st *domain.State) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"watched":{`)
	for i, e := range st.Watched.Values() {
		if err := writeRecord(&buf, i, e.Title, []any{e.Title, nonNil(e.GenreIDs), float64(e.Rating)}); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`},"planned":{`)
	for i, e := range st.Planned.Values() {
		if err := writeRecord(&buf, i, e.Title, []any{e.Title, nonNil(e.GenreIDs)}); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`}}`)

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indent state: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeRecord(buf *bytes.Buffer, i int, key string, record []any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if i > 0 {
		buf.WriteByte(',')
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

// decodeState parses a state document, keeping key order.
// Every record is validated; one bad record fails the whole document.
func decodeState(data []byte) (*domain.State, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	st := domain.NewState()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "watched":
			err = decodeGroup(dec, func(title string, raw json.RawMessage) error {
				e, err := decodeWatched(title, raw)
				if err != nil {
					return err
				}
				st.Watched.Put(e)
				return nil
			})
		case "planned":
			err = decodeGroup(dec, func(title string, raw json.RawMessage) error {
				e, err := decodePlanned(title, raw)
				if err != nil {
					return err
				}
				st.Planned.Put(e)
				return nil
			})
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	// A title lives in one list; watched wins
	for _, title := range st.Planned.Titles() {
		if st.Watched.Has(title) {
			st.Planned.Delete(title)
		}
	}
	return st, nil
}

func decodeGroup(dec *json.Decoder, fn func(title string, raw json.RawMessage) error) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		title, err := nextKey(dec)
		if err != nil {
			return err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("read %q: %w", title, err)
		}
		if err := fn(title, raw); err != nil {
			return fmt.Errorf("record %q: %w", title, err)
		}
	}
	return expectDelim(dec, '}')
}

func decodeWatched(title string, raw json.RawMessage) (domain.WatchEntry, error) {
	var rec []json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.WatchEntry{}, err
	}
	if len(rec) != 3 {
		return domain.WatchEntry{}, fmt.Errorf("expected 3 fields, got %d", len(rec))
	}
	var ids []int
	if err := json.Unmarshal(rec[1], &ids); err != nil {
		return domain.WatchEntry{}, fmt.Errorf("genre ids: %w", err)
	}
	var rating float64
	if err := json.Unmarshal(rec[2], &rating); err != nil {
		return domain.WatchEntry{}, fmt.Errorf("rating: %w", err)
	}
	return domain.NewWatchEntry(title, ids, domain.Rating(rating))
}

func decodePlanned(title string, raw json.RawMessage) (domain.PlanEntry, error) {
	var rec []json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.PlanEntry{}, err
	}
	if len(rec) != 2 {
		return domain.PlanEntry{}, fmt.Errorf("expected 2 fields, got %d", len(rec))
	}
	var ids []int
	if err := json.Unmarshal(rec[1], &ids); err != nil {
		return domain.PlanEntry{}, fmt.Errorf("genre ids: %w", err)
	}
	if title == "" {
		return domain.PlanEntry{}, domain.ErrInvalidMovie
	}
	return domain.PlanEntry{Title: title, GenreIDs: ids}, nil
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
