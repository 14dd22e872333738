// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import (
	"github.com/specialistvlad/plantgo/internal/entitystore"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/registry"
	"github.com/specialistvlad/plantgo/internal/scopedname"
)

// Expose re-exposes every name bound in from, aliases included, inside into
// as "<prefix>::<name>". The entities stay owned by from; into only gains
// name bindings. Exposing a sub-model that itself exposes its own sub-models
// therefore yields names qualified at every level, e.g. "outer::inner::link".
func (p *Plant) Expose(from, into registry.ModelInstanceIndex, prefix string) error {
	if err := p.checkMutable("expose model instance '"+p.instances.Name(from)+"'", into); err != nil {
		return err
	}
	if !p.instances.Contains(from) {
		return errors.NotFound("Model instance", from.String(), "")
	}
	if err := exposeTable(p.bodies, from, into, prefix); err != nil {
		return err
	}
	if err := exposeTable(p.frames, from, into, prefix); err != nil {
		return err
	}
	if err := exposeTable(p.joints, from, into, prefix); err != nil {
		return err
	}
	return exposeTable(p.actuators, from, into, prefix)
}

func exposeTable[I ~int, T any](t *entitystore.Table[I, T], from, into registry.ModelInstanceIndex, prefix string) error {
	for _, name := range t.NamesIn(from) {
		index, err := t.GetByNameIn(name, from)
		if err != nil {
			return err
		}
		if err := t.Alias(scopedname.Join(prefix, name), into, index); err != nil {
			return err
		}
	}
	return nil
}
