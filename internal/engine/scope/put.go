package scope

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/engine/remote"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Put publishes bit into the scope.
//
// The declared dependencies are resolved first: local ones through the
// dependency map, remote ones with one fetch per remote. The closure is cached
// in External, the bit is built and persisted into Source, and only then is
// the dependency map written. A failure after External was touched removes
// what this call added. The returned set is the closure followed by the bit.
func (s *Scope) Put(ctx context.Context, bit *domain.Bit) (_ domain.Bits, err error) {
	ctx, span := s.factory.tracer.Start(ctx, "scope.put")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := bit.Validate(); err != nil {
		return nil, err
	}
	bit = bit.WithScope("")
	id := bit.ID()
	span.SetAttribute("bit.id", id)

	remotes, err := s.Remotes()
	if err != nil {
		return nil, err
	}
	declared, err := bit.Dependencies()
	if err != nil {
		return nil, err
	}
	closure, err := s.resolveClosure(ctx, declared, remotes)
	if err != nil {
		return nil, err
	}
	for _, dep := range closure {
		if dep.Scope == "" && dep.Meta.Box == id.Box && dep.Meta.Name == id.Name {
			return nil, zerr.With(zerr.Wrap(domain.ErrCycleDetected, "bit depends on itself"), "bit", id.String())
		}
	}
	span.SetAttribute("bit.dependencies", len(closure))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.build(ctx, bit); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var foreign domain.Bits
	for _, dep := range closure {
		if dep.Scope != "" {
			foreign = append(foreign, dep)
		}
	}
	added, err := s.storage.External().Store(foreign...)
	if err != nil {
		return nil, s.rollback(err, added, id, false, nil)
	}

	// A republished version replaces the record in place. An unreadable
	// previous record cannot be restored.
	previous, loadErr := s.storage.Sources().Load(id)
	if loadErr != nil {
		previous = nil
	}
	created, err := s.storage.Sources().Set(bit)
	if err != nil {
		return nil, s.rollback(err, added, id, false, nil)
	}

	deps := s.storage.Dependencies()
	deps.SetBit(id, newRecord(closure))
	if err := deps.Write(id); err != nil {
		deps.Discard(id)
		return nil, s.rollback(err, added, id, created, previous)
	}

	s.index(ctx, bit)

	out := make(domain.Bits, 0, len(closure)+1)
	out = append(out, closure...)
	return append(out, bit), nil
}

// rollback undoes the writes of a failed put. A new Source record is removed
// and an overwritten one is put back. cause stays matchable with errors.Is.
func (s *Scope) rollback(cause error, added domain.BitIDs, id domain.BitID, created bool, previous *domain.Bit) error {
	errs := []error{cause}
	switch {
	case created:
		errs = append(errs, s.storage.Sources().Clean(id))
	case previous != nil:
		_, err := s.storage.Sources().Set(previous)
		errs = append(errs, err)
	}
	if len(added) > 0 {
		errs = append(errs, s.storage.External().Remove(added...))
	}
	return errors.Join(errs...)
}

func newRecord(closure domain.Bits) domain.DependencyRecord {
	record := domain.DependencyRecord{
		Dependencies: closure.IDs(),
		Remotes:      map[string]string{},
	}
	for _, dep := range closure {
		if dep.Scope != "" {
			record.Remotes[dep.ID().String()] = dep.Scope
		}
	}
	return record
}

// resolveClosure gathers the flattened, deduplicated closure of ids. Local ids
// resolve through the dependency map; the others are fetched from their
// remotes with their own dependencies, one call per remote. Both run in
// parallel.
func (s *Scope) resolveClosure(ctx context.Context, ids domain.BitIDs, remotes domain.Remotes) (domain.Bits, error) {
	name := s.Name()
	var local, foreign domain.BitIDs
	for _, id := range ids {
		if id.IsLocal(name) {
			local = append(local, id.Local())
		} else {
			foreign = append(foreign, id)
		}
	}

	localBits := make([]domain.Bits, len(local))
	var foreignBits domain.Bits

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range local {
		g.Go(func() error {
			bits, err := s.getLocal(gctx, id)
			if err != nil {
				return err
			}
			localBits[i] = bits
			return nil
		})
	}
	if len(foreign) > 0 {
		g.Go(func() error {
			bits, err := remote.FetchMany(gctx, s.factory.network, s.factory.codec, remotes, foreign, true)
			if err != nil {
				return err
			}
			foreignBits = bits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var closure domain.Bits
	for _, bits := range localBits {
		closure = append(closure, bits...)
	}
	closure = append(closure, foreignBits...)
	return closure.Dedupe(), nil
}

// build runs the compiler plugin named by the bit in a Tmp directory and
// attaches its output as the bit's dist files.
func (s *Scope) build(ctx context.Context, bit *domain.Bit) (err error) {
	if bit.Meta.Compiler == "" {
		return nil
	}
	ctx, span := s.factory.tracer.Start(ctx, "scope.build")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("compiler", bit.Meta.Compiler)

	plugin, err := s.factory.plugins.Lookup(bit.Meta.Compiler)
	if err != nil {
		return err
	}

	tmp := s.storage.Tmp()
	if err := tmp.EnsureDir(); err != nil {
		return err
	}
	dir, err := tmp.MkdirTemp(bit.Meta.Name + "-build-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	bit.Dist = nil
	if err := s.factory.layout.WriteDir(dir, bit); err != nil {
		return err
	}
	artifact, err := plugin.Build(ctx, dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "build failed"), "bit", bit.ID().String())
	}
	bit.Dist = artifact.Files
	return nil
}
