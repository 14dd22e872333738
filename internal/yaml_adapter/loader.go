// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package yaml_adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/model"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of model.Loader.
type Loader struct{}

// NewLoader creates a new YAML document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements model.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load reads and decodes the YAML file at path.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	ctxlog.FromContext(ctx).Debug("YAML loader reading file.", "path", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidDocument(path, fmt.Errorf("read: %w", err))
	}
	return l.Parse(ctx, raw, path)
}

// Parse decodes YAML source held in memory.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*model.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var file yamlFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("document is empty")
		}
		return nil, errors.InvalidDocument(filename, fmt.Errorf("failed to decode YAML: %w", err))
	}

	doc, err := translateFile(&file, model.NewFSInfo(filename))
	if err != nil {
		return nil, errors.InvalidDocument(filename, err)
	}
	ctxlog.FromContext(ctx).Debug("YAML document translated.", "file", filename, "entries", len(doc.Entries))
	return doc, nil
}

func translateFile(file *yamlFile, fs *model.FSInfo) (*model.Document, error) {
	doc := &model.Document{FSInformation: fs}
	switch {
	case file.Model != nil && file.World != nil:
		return nil, fmt.Errorf("a file declares either 'model' or 'world', not both")
	case file.Model != nil:
		doc.Entries = []*model.Entry{{Model: translateModel(file.Model, fs)}}
	case file.World != nil:
		doc.Name = file.World.Name
		for i, e := range file.World.Entries {
			if e == nil || (e.Model == nil) == (e.Include == nil) {
				return nil, fmt.Errorf("world entry %d must set exactly one of 'model' or 'include'", i)
			}
			if e.Model != nil {
				doc.Entries = append(doc.Entries, &model.Entry{Model: translateModel(e.Model, fs)})
				continue
			}
			inc, err := translateInclude(e.Include, fs)
			if err != nil {
				return nil, fmt.Errorf("world entry %d: %w", i, err)
			}
			doc.Entries = append(doc.Entries, &model.Entry{Include: inc})
		}
	default:
		return nil, fmt.Errorf("a file must declare a 'model' or a 'world'")
	}

	for _, m := range doc.Models() {
		for _, inc := range m.Includes {
			if inc.URI == "" {
				return nil, fmt.Errorf("model '%s': include is missing 'uri'", m.Name)
			}
		}
	}
	return doc, nil
}

func translateModel(y *yamlModel, fs *model.FSInfo) *model.Model {
	m := &model.Model{Name: y.Name, FSInformation: fs}
	for _, l := range y.Links {
		m.Links = append(m.Links, &model.Link{Name: l.Name})
	}
	for _, f := range y.Frames {
		m.Frames = append(m.Frames, &model.Frame{Name: f.Name, AttachedTo: f.AttachedTo})
	}
	for _, j := range y.Joints {
		m.Joints = append(m.Joints, &model.Joint{
			Name:        j.Name,
			Type:        j.Type,
			Parent:      j.Parent,
			Child:       j.Child,
			Damping:     j.Damping,
			EffortLimit: j.EffortLimit,
		})
	}
	for _, a := range y.Actuators {
		m.Actuators = append(m.Actuators, &model.Actuator{Name: a.Name, Joint: a.Joint, EffortLimit: a.EffortLimit})
	}
	for _, inc := range y.Includes {
		m.Includes = append(m.Includes, &model.Include{URI: inc.URI, Name: inc.Name, FSInformation: fs})
	}
	return m
}

func translateInclude(y *yamlInclude, fs *model.FSInfo) (*model.Include, error) {
	if y.URI == "" {
		return nil, fmt.Errorf("include is missing 'uri'")
	}
	return &model.Include{URI: y.URI, Name: y.Name, FSInformation: fs}, nil
}
