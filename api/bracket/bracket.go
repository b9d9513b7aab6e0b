// Package bracket runs a single-elimination bracket one pairwise choice at a time.
//
// A State is never mutated after it is returned: Choose hands back a new State
// and leaves the receiver untouched, so a failed call cannot leave a half
// applied transition behind.
package bracket

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPoolSize           = errors.New("pool size must be a power of two and at least 2")
	ErrIndexOutOfPair            = errors.New("winner index must be 0 or 1")
	ErrNoCurrentPair             = errors.New("tournament has no current pair")
	ErrTournamentAlreadyComplete = errors.New("tournament already complete")
)

// Candidate is one entrant. Attributes carry display data the engine never reads.
type Candidate struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ImageURL   string            `json:"image_url,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Result records one resolved pair: the size of the round it was played in and who won.
type Result struct {
	RoundSize int       `json:"round_size"`
	Winner    Candidate `json:"winner"`
}

type EventKind int

const (
	PairResolved EventKind = iota + 1
	RoundAdvanced
	TournamentComplete
)

func (k EventKind) String() string {
	switch k {
	case PairResolved:
		return "pair_resolved"
	case RoundAdvanced:
		return "round_advanced"
	case TournamentComplete:
		return "tournament_complete"
	default:
		return "unknown"
	}
}

// Event describes what a successful Choose did. Only the field matching Kind is set.
type Event struct {
	Kind           EventKind
	RemainingPairs int
	NewRoundSize   int
	Winner         *Candidate
}

type State struct {
	current []Candidate
	cursor  int
	next    []Candidate
	history []Result
	winner  *Candidate
}

// New starts a bracket over candidates, paired in the given order.
func New(candidates []Candidate) (*State, error) {
	if !ValidPoolSize(len(candidates)) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPoolSize, len(candidates))
	}
	return &State{current: cloneCandidates(candidates)}, nil
}

// Choose picks the candidate at index (0 or 1) of the current pair as its winner.
func (s *State) Choose(index int) (*State, Event, error) {
	if s.Complete() {
		return nil, Event{}, ErrTournamentAlreadyComplete
	}
	if index != 0 && index != 1 {
		return nil, Event{}, fmt.Errorf("%w: got %d", ErrIndexOutOfPair, index)
	}

	picked := s.current[s.cursor+index].clone()
	ns := &State{
		current: s.current,
		cursor:  s.cursor + 2,
		next:    append(cloneCandidates(s.next), picked),
		history: append(cloneResults(s.history), Result{RoundSize: len(s.current), Winner: picked}),
	}

	if ns.cursor < len(ns.current) {
		return ns, Event{Kind: PairResolved, RemainingPairs: (len(ns.current) - ns.cursor) / 2}, nil
	}

	if len(ns.next) == 1 {
		w := ns.next[0]
		ns.winner = &w
		ns.current = ns.next
		ns.next = nil
		ns.cursor = 0
		announced := w.clone()
		return ns, Event{Kind: TournamentComplete, Winner: &announced}, nil
	}

	ns.current = ns.next
	ns.next = nil
	ns.cursor = 0
	return ns, Event{Kind: RoundAdvanced, NewRoundSize: len(ns.current)}, nil
}

// CurrentPair returns the two candidates awaiting a choice.
func (s *State) CurrentPair() (Candidate, Candidate, error) {
	if s.Complete() {
		return Candidate{}, Candidate{}, ErrNoCurrentPair
	}
	return s.current[s.cursor].clone(), s.current[s.cursor+1].clone(), nil
}

func (s *State) Complete() bool { return s.winner != nil }

// Winner returns the champion once the tournament is complete.
func (s *State) Winner() (Candidate, bool) {
	if s.winner == nil {
		return Candidate{}, false
	}
	return s.winner.clone(), true
}

// CurrentRound returns a copy of the round being played.
func (s *State) CurrentRound() []Candidate { return cloneCandidates(s.current) }

// History returns a copy of every resolved pair in play order.
func (s *State) History() []Result { return cloneResults(s.history) }

func (s *State) PairCursor() int { return s.cursor }

type Progress struct {
	RoundSize      int    `json:"round_size"`
	RoundLabel     string `json:"round_label"`
	PairsRemaining int    `json:"pairs_remaining"`
}

func (s *State) Progress() Progress {
	if s.Complete() {
		return Progress{RoundSize: 1, RoundLabel: RoundLabel(1)}
	}
	return Progress{
		RoundSize:      len(s.current),
		RoundLabel:     RoundLabel(len(s.current)),
		PairsRemaining: (len(s.current) - s.cursor) / 2,
	}
}

// RoundLabel names a round by how many candidates enter it.
func RoundLabel(size int) string {
	switch size {
	case 1:
		return "Winner"
	case 2:
		return "Final"
	case 4:
		return "Semifinal"
	default:
		return fmt.Sprintf("Round of %d", size)
	}
}

// ValidPoolSize reports whether n candidates can fill a bracket.
func ValidPoolSize(n int) bool { return n >= 2 && isPowerOfTwo(n) }

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

func (c Candidate) clone() Candidate {
	if c.Attributes != nil {
		attrs := make(map[string]string, len(c.Attributes))
		for k, v := range c.Attributes {
			attrs[k] = v
		}
		c.Attributes = attrs
	}
	return c
}

func cloneCandidates(in []Candidate) []Candidate {
	if in == nil {
		return nil
	}
	out := make([]Candidate, len(in))
	for i, c := range in {
		out[i] = c.clone()
	}
	return out
}

func cloneResults(in []Result) []Result {
	if in == nil {
		return nil
	}
	out := make([]Result, len(in))
	for i, r := range in {
		out[i] = Result{RoundSize: r.RoundSize, Winner: r.Winner.clone()}
	}
	return out
}
