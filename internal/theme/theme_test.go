package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapBackend struct {
	items map[string]string
	err   error
}

func (m *mapBackend) GetItem(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *mapBackend) SetItem(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = value
	return nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		prefersDark bool
		want        Theme
	}{
		{"stored light wins", "light", true, Light},
		{"stored dark wins", "dark", false, Dark},
		{"nothing stored, prefers dark", "", true, Dark},
		{"nothing stored, prefers light", "", false, Light},
		{"garbage ignored", "purple", true, Dark},
		{"case sensitive", "DARK", false, Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.stored, tt.prefersDark))
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, "🌙", Dark.Icon())
	assert.Equal(t, "☀️", Light.Icon())
}

func TestLoadSave(t *testing.T) {
	b := &mapBackend{items: map[string]string{}}

	got, err := Load(b, false)
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	require.NoError(t, Save(b, got.Toggle()))
	assert.Equal(t, "dark", b.items[StorageKey])

	got, err = Load(b, false)
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}

func TestLoad_ReadError(t *testing.T) {
	b := &mapBackend{err: errors.New("storage disabled")}

	got, err := Load(b, true)
	assert.Error(t, err)
	assert.Equal(t, Dark, got)

	assert.Error(t, Save(b, Light))
}
