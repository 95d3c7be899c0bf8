package locales

import (
	"context"
	"errors"
	"fmt"

	"translation-manager/core/locale"
	"translation-manager/core/reconcile"
	"translation-manager/core/review"
	"translation-manager/core/storage"
	"translation-manager/core/tree"

	"go.uber.org/zap"
)

// ErrSameLocale is returned when a locale is asked to be translated from itself.
var ErrSameLocale = errors.New("source and destination locale are the same")

// Service applies translation maintenance operations to stored documents.
type Service struct {
	store   storage.Store
	primary string
	logger  *zap.Logger
}

// NewService creates a new locales service. primary is the reference locale.
func NewService(store storage.Store, primary string, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		primary: primary,
		logger:  logger,
	}
}

// Primary returns the reference locale.
func (s *Service) Primary() string {
	return s.primary
}

// docFunc mutates one loaded document and reports what changed.
type docFunc func(id string, doc *tree.Value) (reconcile.Summary, error)

// Alphabetize loads and re-saves every document, which rewrites it with sorted keys.
func (s *Service) Alphabetize(ctx context.Context) (Report, error) {
	return s.eachDocument(ctx, true, false, func(string, *tree.Value) (reconcile.Summary, error) {
		return reconcile.Summary{}, nil
	})
}

// CopyNewKeys copies the keys of the primary document missing from every other document.
func (s *Service) CopyNewKeys(ctx context.Context, opts reconcile.Options) (Report, error) {
	return s.withPrimary(ctx, reconcile.OperationPropagate, opts)
}

// TrimDeadKeys removes the keys the primary document does not have from every other document.
func (s *Service) TrimDeadKeys(ctx context.Context, opts reconcile.Options) (Report, error) {
	return s.withPrimary(ctx, reconcile.OperationPrune, opts)
}

// RemoveKey deletes key and its children from every document, the primary included.
func (s *Service) RemoveKey(ctx context.Context, key string, opts reconcile.Options) (Report, error) {
	path, err := tree.ParsePath(key)
	if err != nil {
		return nil, err
	}
	return s.eachDocument(ctx, true, opts.DryRun, func(_ string, doc *tree.Value) (reconcile.Summary, error) {
		if opts.DryRun {
			doc = doc.Clone()
		}
		return reconcile.DeleteByPath(path, doc), nil
	})
}

func (s *Service) withPrimary(ctx context.Context, op reconcile.Operation, opts reconcile.Options) (Report, error) {
	primary, err := s.store.Load(ctx, s.primary)
	if err != nil {
		return nil, fmt.Errorf("failed to load primary locale: %w", err)
	}
	return s.eachDocument(ctx, false, opts.DryRun, func(_ string, doc *tree.Value) (reconcile.Summary, error) {
		return reconcile.Run(op, primary, doc, opts)
	})
}

// eachDocument runs fn on every stored document and saves the ones it succeeded on.
// A failure is recorded in that document's Result and the loop continues.
// With dryRun nothing is saved; fn must not mutate the document it is given.
func (s *Service) eachDocument(ctx context.Context, includePrimary, dryRun bool, fn docFunc) (Report, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	report := make(Report, 0, len(ids))
	for _, id := range ids {
		if id == s.primary && !includePrimary {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		l := s.logger.With(zap.String("locale", id), zap.String("path", s.store.Location(id)))
		l.Info("Updating document")

		res := Result{Locale: id}
		res.Summary, res.Err = s.applyOne(ctx, id, dryRun, fn)
		if res.Err != nil {
			l.Error("Document failed", zap.Error(res.Err))
		} else {
			res.Saved = !dryRun
			l.Debug("Document processed",
				zap.Int("added", res.Summary.Added),
				zap.Int("replaced", res.Summary.Replaced),
				zap.Int("removed", res.Summary.Removed),
				zap.Bool("saved", res.Saved),
			)
		}
		report = append(report, res)
	}
	return report, nil
}

func (s *Service) applyOne(ctx context.Context, id string, dryRun bool, fn docFunc) (reconcile.Summary, error) {
	doc, err := s.store.Load(ctx, id)
	if err != nil {
		return reconcile.Summary{}, err
	}
	summary, err := fn(id, doc)
	if err != nil {
		return summary, err
	}
	if dryRun {
		return summary, nil
	}
	if err := s.store.Save(ctx, id, doc); err != nil {
		return summary, err
	}
	return summary, nil
}

// TranslateOptions control an interactive translation.
type TranslateOptions struct {
	// Source is the reference locale; the primary when empty.
	Source string
	// Force reviews every key, not only the missing ones.
	Force bool
}

// TranslateResult reports an interactive translation.
type TranslateResult struct {
	Review  review.Result
	Pending int
	Saved   bool
}

// PromptFactory builds the Prompter for a translation once the locales are known.
type PromptFactory func(source, dest string) review.Prompter

// Translate runs an interactive review of dest against the source locale and
// saves dest when the session completes. An interrupted session saves nothing.
func (s *Service) Translate(ctx context.Context, dest string, opts TranslateOptions, prompter PromptFactory) (TranslateResult, error) {
	var out TranslateResult

	source := opts.Source
	if source == "" {
		source = s.primary
	}
	for _, code := range []string{source, dest} {
		if _, err := locale.Parse(code); err != nil {
			return out, err
		}
	}
	if source == dest {
		return out, fmt.Errorf("%w: %s", ErrSameLocale, dest)
	}

	sourceDoc, err := s.store.Load(ctx, source)
	if err != nil {
		return out, err
	}
	destDoc, err := s.store.Load(ctx, dest)
	if err != nil {
		return out, err
	}

	l := s.logger.With(zap.String("locale", dest))
	session, err := review.NewSession(sourceDoc, destDoc, review.WithForce(opts.Force), review.WithLogger(l))
	if err != nil {
		return out, fmt.Errorf("failed to prepare review of %s: %w", dest, err)
	}
	out.Pending = len(session.Pending())
	if out.Pending == 0 {
		l.Debug("All keys are set, nothing to translate")
		return out, nil
	}

	out.Review, err = session.Run(ctx, prompter(source, dest))
	if err != nil {
		return out, err
	}

	if err := s.store.Save(ctx, dest, destDoc); err != nil {
		return out, fmt.Errorf("failed to save %s: %w", dest, err)
	}
	out.Saved = true
	l.Info("Translation saved", zap.Int("reviewed", out.Review.Reviewed), zap.Int("updated", len(out.Review.Edits)))
	return out, nil
}
