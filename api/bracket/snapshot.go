package bracket

import (
	"errors"
	"fmt"
)

var ErrCorruptSnapshot = errors.New("corrupt bracket snapshot")

// Snapshot is the serialisable form of a State.
type Snapshot struct {
	CurrentRound []Candidate `json:"current_round"`
	PairCursor   int         `json:"pair_cursor"`
	NextRound    []Candidate `json:"next_round"`
	History      []Result    `json:"history"`
	Winner       *Candidate  `json:"winner,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		CurrentRound: cloneCandidates(s.current),
		PairCursor:   s.cursor,
		NextRound:    cloneCandidates(s.next),
		History:      cloneResults(s.history),
	}
	if s.winner != nil {
		w := s.winner.clone()
		snap.Winner = &w
	}
	return snap
}

// Restore rebuilds a State from a snapshot, rejecting any snapshot that breaks
// the bracket invariants.
func Restore(snap Snapshot) (*State, error) {
	if snap.Winner != nil {
		if len(snap.History) == 0 || snap.History[len(snap.History)-1].Winner.ID != snap.Winner.ID {
			return nil, fmt.Errorf("%w: winner does not match last result", ErrCorruptSnapshot)
		}
		w := snap.Winner.clone()
		if err := checkHistory(snap.History, []Candidate{w}, 0, nil); err != nil {
			return nil, err
		}
		return &State{
			current: []Candidate{w},
			history: cloneResults(snap.History),
			winner:  &w,
		}, nil
	}

	n := len(snap.CurrentRound)
	if !ValidPoolSize(n) {
		return nil, fmt.Errorf("%w: round size %d", ErrCorruptSnapshot, n)
	}
	if snap.PairCursor < 0 || snap.PairCursor%2 != 0 || snap.PairCursor >= n {
		return nil, fmt.Errorf("%w: pair cursor %d for round of %d", ErrCorruptSnapshot, snap.PairCursor, n)
	}
	if len(snap.NextRound) != snap.PairCursor/2 {
		return nil, fmt.Errorf("%w: next round holds %d, want %d", ErrCorruptSnapshot, len(snap.NextRound), snap.PairCursor/2)
	}
	if err := checkHistory(snap.History, snap.CurrentRound, snap.PairCursor/2, snap.NextRound); err != nil {
		return nil, err
	}

	return &State{
		current: cloneCandidates(snap.CurrentRound),
		cursor:  snap.PairCursor,
		next:    cloneCandidates(snap.NextRound),
		history: cloneResults(snap.History),
	}, nil
}

// checkHistory verifies history is exactly the results of every finished round
// followed by the played pairs of current: round sizes halve in order, current
// holds the winners of the previous round and next the winners played so far.
func checkHistory(history []Result, current []Candidate, played int, next []Candidate) error {
	roundSize := len(current)
	total := len(history) - played + roundSize
	if total < roundSize || !isPowerOfTwo(total) {
		return fmt.Errorf("%w: %d results do not fit a round of %d", ErrCorruptSnapshot, len(history), roundSize)
	}

	i := 0
	var previous []Candidate
	for size := total; size >= roundSize && size > 1; size /= 2 {
		want := size / 2
		if size == roundSize {
			want = played
		}
		winners := make([]Candidate, 0, want)
		for j := 0; j < want; j++ {
			r := history[i]
			if r.RoundSize != size {
				return fmt.Errorf("%w: result %d played in round of %d, want %d", ErrCorruptSnapshot, i, r.RoundSize, size)
			}
			winners = append(winners, r.Winner)
			i++
		}
		if size == roundSize {
			if !sameIDs(winners, next) {
				return fmt.Errorf("%w: next round does not match results", ErrCorruptSnapshot)
			}
		} else {
			previous = winners
		}
	}

	if previous != nil && !sameIDs(previous, current) {
		return fmt.Errorf("%w: current round does not match previous winners", ErrCorruptSnapshot)
	}
	return nil
}

func sameIDs(a, b []Candidate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
