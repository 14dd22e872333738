package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleModel(t *testing.T) {
	m := &Model{Name: "acrobot", FSInformation: NewFSInfo("models/acrobot.hcl")}
	doc := NewModelDocument(m)

	got, err := doc.SingleModel()
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.Equal(t, "models", doc.FSInformation.Dir())
}

func TestSingleModel_RejectsWorldDocuments(t *testing.T) {
	doc := &Document{
		Entries: []*Entry{
			{Model: &Model{Name: "a"}},
			{Include: &Include{URI: "model://b"}},
		},
	}
	_, err := doc.SingleModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<memory>")

	models := doc.Models()
	require.Len(t, models, 1)
	assert.Equal(t, "a", models[0].Name)

	_, err = (&Document{Entries: []*Entry{{Include: &Include{URI: "x"}}}}).SingleModel()
	assert.Error(t, err)
}

func TestFSInfo_NilSafe(t *testing.T) {
	var f *FSInfo
	assert.Equal(t, ".", f.Dir())
	assert.Equal(t, "<memory>", f.String())
}
