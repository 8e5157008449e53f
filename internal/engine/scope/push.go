package scope

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Push uploads ids to the remote registered under alias, or to the primary
// remote when alias is empty. Each id's locally owned dependencies go first.
//
// A pushed bit is owned by the remote from then on: it is cached in External
// under the remote's scope and its Source record and map entry are dropped.
// Local dependents keep resolving it through that cached copy. The ids pushed
// before a failure are returned with the error and are released the same way.
func (s *Scope) Push(ctx context.Context, ids domain.BitIDs, alias string) (_ domain.BitIDs, err error) {
	ctx, span := s.factory.tracer.Start(ctx, "scope.push")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	name := s.Name()
	var queue domain.Bits
	for _, id := range ids {
		if !id.IsLocal(name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "only bits owned by this scope can be pushed"), "id", id.String())
		}
		closure, err := s.getLocal(ctx, id.Local())
		if err != nil {
			return nil, err
		}
		queue = append(queue, closure...)
	}
	queue = queue.Dedupe()

	client, err := s.connect(ctx, alias)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()
	target := client.Remote().Alias
	span.SetAttribute("remote", target)

	var pushed, cached domain.BitIDs
	defer func() {
		if releaseErr := s.release(context.WithoutCancel(ctx), cached); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()
	for _, bit := range queue {
		if bit.Scope != "" {
			continue
		}
		if err := client.Push(ctx, bit); err != nil {
			return pushed, err
		}
		pushed = append(pushed, bit.ID())
		if _, err := s.storage.External().Store(bit.WithScope(target)); err != nil {
			return pushed, err
		}
		cached = append(cached, bit.ID())
	}
	return pushed, nil
}

// release drops the map entries and Source records of ids, whose copies now
// live in External, and rebuilds the search index.
func (s *Scope) release(ctx context.Context, ids domain.BitIDs) error {
	if len(ids) == 0 {
		return nil
	}

	deps := s.storage.Dependencies()
	for _, id := range ids {
		deps.Delete(id)
	}
	if err := deps.Write(ids...); err != nil {
		for _, id := range ids {
			deps.Discard(id)
		}
		return zerr.Wrap(err, "failed to release pushed bits")
	}

	var errs error
	for _, id := range ids {
		errs = errors.Join(errs, s.storage.Sources().Clean(id))
	}
	s.indexing.Wait()
	if err := s.Reindex(ctx); err != nil {
		s.factory.logger.Warn(fmt.Sprintf("reindexing after push failed: %v", err))
	}
	return errs
}
