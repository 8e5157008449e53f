package scope

import (
	"context"
	"errors"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/engine/remote"
	"go.trai.ch/zerr"
)

// Get resolves id and returns its dependency closure followed by the bit.
// Ids owned by another scope are fetched whole from their remote and cached
// in External.
func (s *Scope) Get(ctx context.Context, id domain.BitID) (_ domain.Bits, err error) {
	ctx, span := s.factory.tracer.Start(ctx, "scope.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("bit.id", id)

	if id.IsLocal(s.Name()) {
		return s.getLocal(ctx, id.Local())
	}

	remotes, err := s.Remotes()
	if err != nil {
		return nil, err
	}
	r, err := remotes.Resolve(id)
	if err != nil {
		return nil, err
	}
	client, err := remote.Connect(ctx, s.factory.network, s.factory.codec, r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	bits, err := client.Fetch(ctx, domain.BitIDs{id}, true)
	if err != nil {
		return nil, err
	}
	if _, err := s.storage.External().Store(bits...); err != nil {
		return nil, err
	}
	return bits, nil
}

// GetMany resolves every id. Local ids resolve through the dependency map and
// remote ones are fetched with one call per remote. The result is the
// deduplicated union of every closure.
func (s *Scope) GetMany(ctx context.Context, ids domain.BitIDs) (domain.Bits, error) {
	remotes, err := s.Remotes()
	if err != nil {
		return nil, err
	}
	bits, err := s.resolveClosure(ctx, ids, remotes)
	if err != nil {
		return nil, err
	}

	var foreign domain.Bits
	for _, bit := range bits {
		if bit.Scope != "" {
			foreign = append(foreign, bit)
		}
	}
	if _, err := s.storage.External().Store(foreign...); err != nil {
		return nil, err
	}
	return bits, nil
}

// GetOne returns the bit addressed by id without resolving its dependencies.
func (s *Scope) GetOne(ctx context.Context, id domain.BitID) (*domain.Bit, error) {
	if id.IsLocal(s.Name()) {
		resolved, err := s.storage.Sources().ResolveVersion(id.Local())
		if err != nil {
			if moved, ok := s.relocated(id, err); ok {
				return s.storage.External().Load(moved)
			}
			return nil, err
		}
		return s.storage.Sources().Load(resolved)
	}

	if id.HasVersion() && s.storage.External().Has(id) {
		return s.storage.External().Load(id)
	}

	remotes, err := s.Remotes()
	if err != nil {
		return nil, err
	}
	r, err := remotes.Resolve(id)
	if err != nil {
		return nil, err
	}
	client, err := remote.Connect(ctx, s.factory.network, s.factory.codec, r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	bits, err := client.Fetch(ctx, domain.BitIDs{id}, false)
	if err != nil {
		return nil, err
	}
	if _, err := s.storage.External().Store(bits...); err != nil {
		return nil, err
	}
	return bits[0], nil
}

// getLocal resolves an id owned by this scope: version, map entry, recorded
// dependencies, then the bit itself. A bit this scope pushed away resolves
// through the remote that owns it now.
func (s *Scope) getLocal(ctx context.Context, id domain.BitID) (domain.Bits, error) {
	resolved, err := s.storage.Sources().ResolveVersion(id)
	if err != nil {
		if moved, ok := s.relocated(id, err); ok {
			return s.Get(ctx, moved)
		}
		return nil, err
	}
	record, err := s.storage.Dependencies().Get(resolved)
	if err != nil {
		return nil, err
	}
	for _, dep := range record.BitIDs() {
		if dep.Scope == "" && dep.Box == resolved.Box && dep.Name == resolved.Name {
			return nil, zerr.With(zerr.Wrap(domain.ErrCycleDetected, "dependency map loops back to bit"), "bit", resolved.String())
		}
	}

	deps, err := s.loadDependencies(ctx, record)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load dependencies"), "bit", resolved.String())
	}
	bit, err := s.storage.Sources().Load(resolved)
	if err != nil {
		return nil, err
	}
	return append(deps, bit), nil
}

// loadDependencies materializes a recorded closure in its recorded order.
// Owned bits load from Source, cached ones from External, and the rest are
// fetched from the remotes the record names.
func (s *Scope) loadDependencies(ctx context.Context, record domain.DependencyRecord) (domain.Bits, error) {
	ids := record.BitIDs()
	out := make(domain.Bits, len(ids))

	var missing domain.BitIDs
	var positions []int
	for i, dep := range ids {
		var err error
		switch {
		case dep.Scope == "":
			out[i], err = s.loadOwned(dep)
		case s.storage.External().Has(dep):
			out[i], err = s.storage.External().Load(dep)
		default:
			if alias, ok := record.RemoteOf(dep); ok {
				dep = dep.WithScope(alias)
			}
			missing = append(missing, dep)
			positions = append(positions, i)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	remotes, err := s.Remotes()
	if err != nil {
		return nil, err
	}
	fetched, err := remote.FetchMany(ctx, s.factory.network, s.factory.codec, remotes, missing, false)
	if err != nil {
		return nil, err
	}
	if _, err := s.storage.External().Store(fetched...); err != nil {
		return nil, err
	}
	for j, bit := range fetched {
		out[positions[j]] = bit
	}
	return out, nil
}

// loadOwned reads a bit recorded as owned by this scope, falling back to the
// cached copy left behind when it was pushed.
func (s *Scope) loadOwned(id domain.BitID) (*domain.Bit, error) {
	bit, err := s.storage.Sources().Load(id)
	if err != nil {
		if moved, ok := s.relocated(id, err); ok {
			return s.storage.External().Load(moved)
		}
		return nil, err
	}
	return bit, nil
}

// relocated finds the cached copy of a bit missing from Source, such as one this
// scope pushed or one it serves for another remote. cause is the error
// Source returned. Only a missing record is looked up.
func (s *Scope) relocated(id domain.BitID, cause error) (domain.BitID, bool) {
	if !errors.Is(cause, domain.ErrBitNotFound) {
		return domain.BitID{}, false
	}
	moved, ok := s.storage.External().Locate(id.Local())
	return moved, ok && !moved.IsLocal(s.Name())
}
