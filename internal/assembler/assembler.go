// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package assembler

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/model"
	"github.com/specialistvlad/plantgo/internal/plant"
	"github.com/specialistvlad/plantgo/internal/registry"
	"github.com/specialistvlad/plantgo/internal/scopedname"
)

// DefaultMaxIncludeDepth bounds include nesting when Options leaves it unset.
const DefaultMaxIncludeDepth = 32

// Source locates and loads the documents that includes refer to.
type Source interface {
	ResolvePath(uri string, from *model.FSInfo) (string, error)
	Load(ctx context.Context, path string) (*model.Document, error)
}

// Options tunes an Assembler.
type Options struct {
	MaxIncludeDepth int
}

// Assembler adds models described by documents to a plant.
type Assembler struct {
	plant  *plant.Plant
	source Source
	opts   Options
}

// New creates an assembler populating p. source may be nil when no document
// uses includes.
func New(p *plant.Plant, source Source, opts Options) *Assembler {
	if opts.MaxIncludeDepth <= 0 {
		opts.MaxIncludeDepth = DefaultMaxIncludeDepth
	}
	return &Assembler{plant: p, source: source, opts: opts}
}

// Plant returns the plant being populated.
func (a *Assembler) Plant() *plant.Plant {
	return a.plant
}

// AddModel adds the single model of doc as a new model instance. name
// overrides the model's declared name when non-empty.
func (a *Assembler) AddModel(ctx context.Context, doc *model.Document, name string) (registry.ModelInstanceIndex, error) {
	if a.plant.IsFinalized() {
		return registry.InvalidModelInstance, errors.PlantFinalized("add model")
	}
	m, err := doc.SingleModel()
	if err != nil {
		return registry.InvalidModelInstance, errors.InvalidDocument(doc.FSInformation.String(), err)
	}

	cp := a.plant.Checkpoint()
	instance, err := a.addModel(ctx, m, name, newIncludeChain(doc), scopedname.Name{})
	if err != nil {
		a.plant.Rollback(cp)
		return registry.InvalidModelInstance, err
	}
	a.logCommitted(ctx, cp)
	return instance, nil
}

// AddModelFromFile loads path and adds its model, see AddModel.
func (a *Assembler) AddModelFromFile(ctx context.Context, path, name string) (registry.ModelInstanceIndex, error) {
	doc, err := a.loadFile(ctx, path)
	if err != nil {
		return registry.InvalidModelInstance, err
	}
	return a.AddModel(ctx, doc, name)
}

// AddModels adds every top-level entry of a world document in declaration
// order and returns their instance handles. Each entry is added atomically;
// when one fails, the handles of the entries committed before it are
// returned with the error.
func (a *Assembler) AddModels(ctx context.Context, doc *model.Document) ([]registry.ModelInstanceIndex, error) {
	if a.plant.IsFinalized() {
		return nil, errors.PlantFinalized("add models")
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adding models.", "document", doc.FSInformation.String(), "world", doc.Name, "entries", len(doc.Entries))

	chain := newIncludeChain(doc)
	handles := make([]registry.ModelInstanceIndex, 0, len(doc.Entries))
	for i, entry := range doc.Entries {
		cp := a.plant.Checkpoint()
		var (
			instance registry.ModelInstanceIndex
			err      error
		)
		switch {
		case entry.Model != nil:
			instance, err = a.addModel(ctx, entry.Model, "", chain, scopedname.Name{})
		case entry.Include != nil:
			instance, err = a.addIndependent(ctx, entry.Include, chain)
		default:
			err = errors.InvalidDocument(doc.FSInformation.String(), fmt.Errorf("entry %d is empty", i))
		}
		if err != nil {
			a.plant.Rollback(cp)
			return handles, err
		}
		a.logCommitted(ctx, cp)
		handles = append(handles, instance)
	}
	return handles, nil
}

// AddModelsFromFile loads path and adds its entries, see AddModels.
func (a *Assembler) AddModelsFromFile(ctx context.Context, path string) ([]registry.ModelInstanceIndex, error) {
	doc, err := a.loadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return a.AddModels(ctx, doc)
}

func (a *Assembler) loadFile(ctx context.Context, path string) (*model.Document, error) {
	if a.source == nil {
		return nil, errors.Resolution(path, fmt.Errorf("no document source configured"))
	}
	resolved, err := a.source.ResolvePath(path, nil)
	if err != nil {
		return nil, err
	}
	return a.source.Load(ctx, resolved)
}

// addIndependent adds an included model as its own top-level instance.
func (a *Assembler) addIndependent(ctx context.Context, inc *model.Include, chain includeChain) (registry.ModelInstanceIndex, error) {
	m, path, err := a.resolveInclude(ctx, inc, chain)
	if err != nil {
		return registry.InvalidModelInstance, err
	}
	return a.addModel(ctx, m, inc.Name, chain.push(path), scopedname.Name{})
}

// addModel creates the instance for m and inserts its entities. prefix
// is the scope of the enclosing composites; it is empty for top-level models.
func (a *Assembler) addModel(ctx context.Context, m *model.Model, name string, chain includeChain, prefix scopedname.Name) (registry.ModelInstanceIndex, error) {
	if name == "" {
		name = m.Name
	}
	if name == "" {
		return registry.InvalidModelInstance, errors.InvalidDocument(m.FSInformation.String(), fmt.Errorf("model has no name and none was given"))
	}
	scope := prefix.Child(name)
	instanceName := scope.String()
	ctx, logger := ctxlog.With(ctx, "model_instance", instanceName)

	jointTypes, err := validateModel(m, instanceName)
	if err != nil {
		return registry.InvalidModelInstance, err
	}

	instance, err := a.plant.AddModelInstance(instanceName)
	if err != nil {
		return registry.InvalidModelInstance, err
	}

	for _, l := range m.Links {
		if _, err := a.plant.AddBody(l.Name, instance); err != nil {
			return registry.InvalidModelInstance, err
		}
		logger.Debug("Added body.", "body", l.Name)
	}

	for _, inc := range m.Includes {
		if err := a.addComposite(ctx, inc, instance, chain, scope); err != nil {
			return registry.InvalidModelInstance, err
		}
	}

	for _, f := range m.Frames {
		body, err := a.resolveBody(f.AttachedTo, instance)
		if err != nil {
			return registry.InvalidModelInstance, fmt.Errorf("frame '%s': %w", f.Name, err)
		}
		if _, err := a.plant.AddFrame(f.Name, instance, body); err != nil {
			return registry.InvalidModelInstance, err
		}
		logger.Debug("Added frame.", "frame", f.Name)
	}

	for i, j := range m.Joints {
		if err := a.addJoint(j, jointTypes[i], instance); err != nil {
			return registry.InvalidModelInstance, err
		}
		logger.Debug("Added joint.", "joint", j.Name, "type", jointTypes[i])
	}

	for _, act := range m.Actuators {
		joint, err := a.plant.GetJointByNameIn(act.Joint, instance)
		if err != nil {
			return registry.InvalidModelInstance, fmt.Errorf("actuator '%s': %w", act.Name, err)
		}
		spec := plant.JointActuatorSpec{Joint: joint, EffortLimit: act.EffortLimit}
		if _, err := a.plant.AddJointActuator(act.Name, instance, spec); err != nil {
			return registry.InvalidModelInstance, err
		}
		logger.Debug("Added joint actuator.", "actuator", act.Name)
	}

	logger.Debug("Model instance assembled.", "index", int(instance))
	return instance, nil
}

// logCommitted reports every instance added since cp. Called only once the
// enclosing load can no longer be rolled back.
func (a *Assembler) logCommitted(ctx context.Context, cp plant.Checkpoint) {
	logger := ctxlog.FromContext(ctx)
	for _, instance := range a.plant.InstancesAddedSince(cp) {
		name, _ := a.plant.ModelInstanceName(instance)
		logger.Info("Model instance added.",
			"model_instance", name,
			"index", int(instance),
			"bodies", len(a.plant.BodiesIn(instance)),
			"joints", len(a.plant.JointsIn(instance)),
		)
	}
}

// addComposite assembles inc as a sub-instance and re-exposes its entities
// inside container under the include's name.
func (a *Assembler) addComposite(ctx context.Context, inc *model.Include, container registry.ModelInstanceIndex, chain includeChain, prefix scopedname.Name) error {
	m, path, err := a.resolveInclude(ctx, inc, chain)
	if err != nil {
		return err
	}
	local := inc.Name
	if local == "" {
		local = m.Name
	}
	if n, err := scopedname.Parse(local); err != nil || n.IsQualified() {
		return errors.InvalidDocument(inc.FSInformation.String(), fmt.Errorf("include '%s' needs a plain, non-scoped name, got '%s'", inc.URI, local))
	}
	sub, err := a.addModel(ctx, m, local, chain.push(path), prefix)
	if err != nil {
		return err
	}
	return a.plant.Expose(sub, container, local)
}

func (a *Assembler) resolveInclude(ctx context.Context, inc *model.Include, chain includeChain) (*model.Model, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", errors.Resolution(inc.URI, err)
	}
	if a.source == nil {
		return nil, "", errors.Resolution(inc.URI, fmt.Errorf("no document source configured"))
	}
	if chain.depth >= a.opts.MaxIncludeDepth {
		return nil, "", errors.Resolution(inc.URI, fmt.Errorf("includes nested deeper than %d levels", a.opts.MaxIncludeDepth))
	}

	path, err := a.source.ResolvePath(inc.URI, inc.FSInformation)
	if err != nil {
		return nil, "", err
	}
	if slices.Contains(chain.paths, path) {
		cycle := strings.Join(append(slices.Clone(chain.paths), path), " -> ")
		return nil, "", errors.Resolution(inc.URI, fmt.Errorf("circular include: %s", cycle))
	}

	doc, err := a.source.Load(ctx, path)
	if err != nil {
		return nil, "", errors.Resolution(inc.URI, err)
	}
	m, err := doc.SingleModel()
	if err != nil {
		return nil, "", errors.Resolution(inc.URI, err)
	}
	ctxlog.FromContext(ctx).Debug("Resolved include.", "uri", inc.URI, "path", path)
	return m, path, nil
}

func (a *Assembler) addJoint(j *model.Joint, jointType plant.JointType, instance registry.ModelInstanceIndex) error {
	if j.Child == "" {
		return errors.InvalidDocument(instanceSource(a.plant, instance), fmt.Errorf("joint '%s' has no child link", j.Name))
	}
	parent, err := a.resolveBody(j.Parent, instance)
	if err != nil {
		return fmt.Errorf("joint '%s' parent: %w", j.Name, err)
	}
	child, err := a.resolveBody(j.Child, instance)
	if err != nil {
		return fmt.Errorf("joint '%s' child: %w", j.Name, err)
	}

	joint, err := a.plant.AddJoint(j.Name, instance, plant.JointSpec{
		Type:        jointType,
		Parent:      parent,
		Child:       child,
		Damping:     j.Damping,
		EffortLimit: j.EffortLimit,
	})
	if err != nil {
		return err
	}

	// Actuated joints get an actuator of the same name.
	if j.EffortLimit > 0 && jointType != plant.JointFixed {
		spec := plant.JointActuatorSpec{Joint: joint, EffortLimit: j.EffortLimit}
		if _, err := a.plant.AddJointActuator(j.Name, instance, spec); err != nil {
			return err
		}
	}
	return nil
}

// resolveBody maps a link reference to a body. "world" and the empty
// string name the world body; anything else is looked up in instance.
func (a *Assembler) resolveBody(name string, instance registry.ModelInstanceIndex) (plant.BodyIndex, error) {
	if name == "" || name == plant.WorldBodyName {
		return plant.WorldBody, nil
	}
	return a.plant.GetBodyByNameIn(name, instance)
}

// validateModel checks the entity names and joints of m before anything is
// inserted, and returns the parsed joint types.
func validateModel(m *model.Model, instance string) ([]plant.JointType, error) {
	for _, l := range m.Links {
		if l.Name == "" {
			return nil, errors.InvalidDocument(m.FSInformation.String(), errors.EmptyName("Body", instance))
		}
	}
	for _, f := range m.Frames {
		if f.Name == "" {
			return nil, errors.InvalidDocument(m.FSInformation.String(), errors.EmptyName("Frame", instance))
		}
	}
	for _, act := range m.Actuators {
		if act.Name == "" {
			return nil, errors.InvalidDocument(m.FSInformation.String(), errors.EmptyName("Joint actuator", instance))
		}
	}
	types := make([]plant.JointType, len(m.Joints))
	for i, j := range m.Joints {
		if j.Name == "" {
			return nil, errors.InvalidDocument(m.FSInformation.String(), errors.EmptyName("Joint", instance))
		}
		if !(j.Damping >= 0) {
			return nil, errors.InvalidJointDamping(j.Name, j.Damping)
		}
		t, err := plant.ParseJointType(j.Type)
		if err != nil {
			return nil, errors.InvalidDocument(m.FSInformation.String(), fmt.Errorf("joint '%s': %w", j.Name, err))
		}
		types[i] = t
	}
	return types, nil
}

// includeChain is the list of documents being assembled, outermost first.
// depth counts includes only; the root document is not one.
type includeChain struct {
	paths []string
	depth int
}

func newIncludeChain(doc *model.Document) includeChain {
	if doc.FSInformation == nil || doc.FSInformation.FilePath == "" {
		return includeChain{}
	}
	path, err := filepath.Abs(doc.FSInformation.FilePath)
	if err != nil {
		path = doc.FSInformation.FilePath
	}
	return includeChain{paths: []string{path}}
}

func (c includeChain) push(path string) includeChain {
	return includeChain{paths: append(slices.Clone(c.paths), path), depth: c.depth + 1}
}

func instanceSource(p *plant.Plant, instance registry.ModelInstanceIndex) string {
	name, err := p.ModelInstanceName(instance)
	if err != nil {
		return instance.String()
	}
	return "model instance '" + name + "'"
}
