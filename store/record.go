package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/tailored-agentic-units/statechain/state"
)

const journalVersion = 1

// Record is the journal entry for one state.
type Record struct {
	Variant string        `json:"variant"`
	Set     []state.Field `json:"set,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type journal struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Records returns the journal records for s, oldest first. The root produces
// no record.
func Records(s *state.State) []Record {
	chain := slices.Collect(s.Ancestry())
	slices.Reverse(chain)

	records := make([]Record, 0, len(chain))
	for _, cur := range chain {
		if cur.IsRoot() {
			continue
		}
		records = append(records, record(cur))
	}
	return records
}

func record(s *state.State) Record {
	r := Record{Variant: s.Variant().String()}

	switch {
	case s.IsFailed():
		r.Error = s.Err().Error()
	case s.IsSuccessful():
		diff := s.Diff()
		for key, change := range diff.Changed().All() {
			r.Set = append(r.Set, state.Field{Key: key, Value: change.Current})
		}
		r.Set = append(r.Set, diff.Added().Pairs()...)
	}

	return r
}

// Encode serializes the chain ending at s.
func Encode(s *state.State) ([]byte, error) {
	if s == nil {
		return nil, errors.New("cannot encode nil state")
	}

	data, err := json.Marshal(journal{Version: journalVersion, Records: Records(s)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode journal: %w", err)
	}
	return data, nil
}

// Decode rebuilds a chain from data produced by Encode. Options apply to the
// recreated chain as they would to state.Create. An empty journal decodes to
// the root. Numbers are decoded as json.Number so that large integers keep
// their exact value.
func Decode(data []byte, opts ...state.Option) (*state.State, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var j journal
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJournal, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after journal", ErrInvalidJournal)
	}

	if j.Version != journalVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidJournal, j.Version)
	}

	return Replay(j.Records, opts...)
}

// Replay applies records in order, starting a new chain with the first.
func Replay(records []Record, opts ...state.Option) (*state.State, error) {
	if len(records) == 0 {
		return state.None(), nil
	}

	first := records[0]
	if first.Variant != state.VariantSuccess.String() {
		return nil, fmt.Errorf("%w: record 0: chain must start with Success, got %s", ErrInvalidJournal, first.Variant)
	}

	current := state.CreateWith(first.Set, opts...)

	for i, r := range records[1:] {
		next, err := apply(current, r)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidJournal, i+1, err)
		}
		current = next
	}

	return current, nil
}

func apply(current *state.State, r Record) (*state.State, error) {
	variant, err := state.ParseVariant(r.Variant)
	if err != nil {
		return nil, err
	}

	switch variant {
	case state.VariantSuccess:
		return current.SucceedWith(r.Set...)
	case state.VariantFailure:
		return current.Fail(&RecordedError{Message: r.Error})
	case state.VariantFinished:
		return current.Finish()
	default:
		return nil, fmt.Errorf("unexpected %s record", variant)
	}
}
