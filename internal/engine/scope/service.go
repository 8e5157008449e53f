package scope

import (
	"context"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScopeService = (*Scope)(nil)

// Fetch serializes the requested bits for a remote caller. Without
// dependencies the answer holds one payload per id in request order. With
// them, each id contributes its closure followed by itself, duplicates
// dropped. Any missing id fails the whole call.
func (s *Scope) Fetch(ctx context.Context, rawIDs []string, withDependencies bool) (_ []domain.Payload, err error) {
	ctx, span := s.factory.tracer.Start(ctx, "scope.fetch")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("ids", len(rawIDs))

	ids, err := domain.ParseBitIDs(rawIDs)
	if err != nil {
		return nil, err
	}

	name := s.Name()
	var bits domain.Bits
	for _, id := range ids {
		if !id.IsLocal(name) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "bit is not owned by this scope"), "id", id.String())
		}
		if withDependencies {
			closure, err := s.getLocal(ctx, id.Local())
			if err != nil {
				return nil, err
			}
			bits = append(bits, closure...)
			continue
		}
		bit, err := s.GetOne(ctx, id.Local())
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}
	if withDependencies {
		bits = bits.Dedupe()
	}

	payloads := make([]domain.Payload, 0, len(bits))
	for _, bit := range bits {
		contents, err := s.factory.codec.Encode(bit)
		if err != nil {
			return nil, err
		}
		id := bit.ID()
		payloads = append(payloads, domain.Payload{ID: id.String(), Name: id.FullName(), Contents: contents})
	}
	return payloads, nil
}

// Upload decodes a pushed archive and publishes it.
func (s *Scope) Upload(ctx context.Context, contents []byte) error {
	bit, err := s.factory.codec.Decode(contents)
	if err != nil {
		return err
	}
	_, err = s.Put(ctx, bit)
	return err
}
