package review

import (
	"context"
	"errors"
	"fmt"

	"translation-manager/core/reconcile"
	"translation-manager/core/tree"

	"go.uber.org/zap"
)

// ErrCancelled is returned by Run when the loop is interrupted before every
// pending path was reviewed.
var ErrCancelled = errors.New("review cancelled")

// State is the position of a Session in its lifecycle.
type State int

const (
	StateInitializing State = iota
	StatePrompting
	StateComplete
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StatePrompting:
		return "prompting"
	case StateComplete:
		return "complete"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Prompt is what a Prompter shows for one pending path.
type Prompt struct {
	// Index is the zero-based position in the pending list.
	Index int
	// Total is the length of the pending list.
	Total int
	Path  tree.Path
	// Source is the reference text.
	Source string
	// Current is the destination text; empty when Missing.
	Current string
	// Missing is set when the destination had no value before the session.
	Missing bool
}

// Prompter asks for the translation of one path. An empty answer keeps the
// current value. Any error aborts the session.
type Prompter interface {
	Ask(ctx context.Context, p Prompt) (string, error)
}

// Edit is an accepted, non-empty answer.
type Edit struct {
	Path     tree.Path
	Previous string
	Value    string
}

// EditObserver is implemented by prompters that want to echo accepted edits.
type EditObserver interface {
	Accepted(e Edit)
}

// Result summarizes a Run.
type Result struct {
	// Propagated lists the keys copied into the destination during initialization.
	Propagated reconcile.Summary
	// Reviewed counts the prompts answered (empty answers included).
	Reviewed int
	// Edits lists the values written, in order.
	Edits []Edit
}

// Option configures a Session.
type Option func(*Session)

// WithForce makes every source Leaf pending, not only the missing ones.
func WithForce(force bool) Option {
	return func(s *Session) { s.force = force }
}

// WithLogger sets the logger used for per-prompt debug lines.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session walks a destination tree through the source's Leaves, one prompt each.
type Session struct {
	source  *tree.Value
	dest    *tree.Value
	force   bool
	logger  *zap.Logger
	state   State
	index   int
	pending []tree.Path
	missing map[string]bool
	result  Result
}

// NewSession prepares a review of dest against source.
//
// It records which source Leaves dest lacks, then aligns dest with
// reconcile.PropagateMissing so every pending path has a value to show. With
// WithForce every source Leaf is pending. When nothing is pending the session
// is Complete on return.
func NewSession(source, dest *tree.Value, opts ...Option) (*Session, error) {
	s := &Session{
		source:  source,
		dest:    dest,
		logger:  zap.NewNop(),
		state:   StateInitializing,
		missing: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	for p := range tree.Flatten(source) {
		absent := !tree.IsLeafAt(dest, p)
		if absent {
			s.missing[p.String()] = true
		}
		if absent || s.force {
			s.pending = append(s.pending, p)
		}
	}

	propagated, err := reconcile.PropagateMissing(source, dest)
	if err != nil {
		return nil, err
	}
	s.result.Propagated = propagated

	if len(s.pending) == 0 {
		s.state = StateComplete
	} else {
		s.state = StatePrompting
	}
	return s, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Pending returns the paths to review, in prompt order.
func (s *Session) Pending() []tree.Path { return s.pending }

// Run prompts for every remaining pending path.
//
// Answers are written to the destination as soon as they are accepted. If ctx
// is cancelled or the prompter fails, Run stops with ErrCancelled: edits made
// for earlier paths stay in the destination and the interrupted path is left
// as it was. The caller persists the destination; Run never does.
func (s *Session) Run(ctx context.Context, prompter Prompter) (Result, error) {
	if s.state != StatePrompting {
		return s.result, nil
	}

	for s.index < len(s.pending) {
		path := s.pending[s.index]
		if err := ctx.Err(); err != nil {
			return s.cancel(path, err)
		}

		prompt, err := s.prompt(path)
		if err != nil {
			return s.cancel(path, err)
		}

		answer, err := prompter.Ask(ctx, prompt)
		if err != nil {
			return s.cancel(path, err)
		}
		s.result.Reviewed++

		if answer != "" {
			var previous string
			if cur, err := tree.Get(s.dest, path); err == nil {
				previous = cur.Text()
			}
			if err := tree.Set(s.dest, path, tree.Leaf(answer)); err != nil {
				return s.cancel(path, err)
			}
			edit := Edit{Path: path, Previous: previous, Value: answer}
			s.result.Edits = append(s.result.Edits, edit)
			if obs, ok := prompter.(EditObserver); ok {
				obs.Accepted(edit)
			}
			s.logger.Debug("Translation updated", zap.String("path", path.String()))
		}
		s.index++
	}

	s.state = StateComplete
	return s.result, nil
}

func (s *Session) prompt(path tree.Path) (Prompt, error) {
	src, err := tree.Get(s.source, path)
	if err != nil {
		return Prompt{}, err
	}
	p := Prompt{
		Index:   s.index,
		Total:   len(s.pending),
		Path:    path,
		Source:  src.Text(),
		Missing: s.missing[path.String()],
	}
	if !p.Missing {
		cur, err := tree.Get(s.dest, path)
		if err != nil {
			return Prompt{}, err
		}
		p.Current = cur.Text()
	}
	return p, nil
}

func (s *Session) cancel(path tree.Path, cause error) (Result, error) {
	s.state = StateCancelled
	s.logger.Debug("Review interrupted", zap.String("path", path.String()), zap.Error(cause))
	return s.result, fmt.Errorf("%w at %s: %w", ErrCancelled, path, cause)
}
