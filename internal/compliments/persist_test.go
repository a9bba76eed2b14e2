package compliments

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	items    map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{items: make(map[string]string)}
}

func (m *memoryBackend) GetItem(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryBackend) SetItem(key, value string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.items[key] = value
	return nil
}

func (m *memoryBackend) RemoveItem(key string) error {
	delete(m.items, key)
	return nil
}

func TestLoad_Absent(t *testing.T) {
	s, err := Load(newMemoryBackend())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_NilBackend(t *testing.T) {
	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_ReadError(t *testing.T) {
	b := newMemoryBackend()
	b.getErr = errors.New("disk I/O error")

	s, err := Load(b)
	assert.ErrorContains(t, err, "disk I/O error")
	assert.Equal(t, Default(), s)
}

func TestLoad_Corrupt(t *testing.T) {
	for _, raw := range []string{
		"{not json",
		`["study"]`,
		`{"study": "not a list"}`,
		`{"study": [1, 2]}`,
		`{"study": []} trailing`,
		`42`,
	} {
		t.Run(raw, func(t *testing.T) {
			b := newMemoryBackend()
			b.items[StorageKey] = raw

			s, err := Load(b)
			assert.Error(t, err)
			assert.Equal(t, Default(), s)
		})
	}
}

func TestLoad_NullFallsBackToDefault(t *testing.T) {
	b := newMemoryBackend()
	b.items[StorageKey] = "null"

	s, err := Load(b)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_AcceptsAnyObject(t *testing.T) {
	b := newMemoryBackend()
	b.items[StorageKey] = `{"zeta": ["z1"], "Weird Key": ["w1", "w2"], "alpha": []}`

	s, err := Load(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "Weird Key", "alpha"}, s.Categories())
	assert.Equal(t, []string{"w1", "w2"}, s.Entries("Weird Key"))
	assert.Equal(t, 0, s.Count("alpha"))
}

func TestLoad_EmptyObject(t *testing.T) {
	b := newMemoryBackend()
	b.items[StorageKey] = `{}`

	s, err := Load(b)
	require.NoError(t, err)
	assert.Empty(t, s.Categories())
	_, ok := s.RandomEntry(AllCategories, fixedRand(0))
	assert.False(t, ok)
}

func TestLoad_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	b := newMemoryBackend()
	b.items[StorageKey] = `{"a": ["a1"], "b": ["b1"], "a": ["a2"]}`

	s, err := Load(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Categories())
	assert.Equal(t, []string{"a2"}, s.Entries("a"))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := Default()
	s, _, err := s.AddEntry("Night Owls!!", "You shine after dark.")
	require.NoError(t, err)
	s, _, err = s.AddEntry("career", "Great job!")
	require.NoError(t, err)
	s, _, err = s.AddEntry("career", "Great job!")
	require.NoError(t, err)

	b := newMemoryBackend()
	require.NoError(t, Save(b, s))

	loaded, err := Load(b)
	require.NoError(t, err)
	assert.Equal(t, s.Categories(), loaded.Categories())
	for _, c := range s.Categories() {
		assert.Equal(t, s.Entries(c), loaded.Entries(c), c)
	}
}

func TestSave_PreservesCategoryOrderInJSON(t *testing.T) {
	b := newMemoryBackend()
	s := New()
	s.add("zeta", "z")
	s.add("alpha", "a")
	s.add("empty")

	require.NoError(t, Save(b, s))
	assert.Equal(t, `{"zeta":["z"],"alpha":["a"],"empty":[]}`, b.items[StorageKey])
}

func TestSave_WriteError(t *testing.T) {
	b := newMemoryBackend()
	b.setErr = errors.New("quota exceeded")
	s := Default()

	err := Save(b, s)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Equal(t, 1, b.setCalls)

	// The in-memory store keeps working after a failed save.
	next, _, err := s.AddEntry("career", "Still here")
	require.NoError(t, err)
	assert.Equal(t, 6, next.Count("career"))
}

func TestStore_JSONEscaping(t *testing.T) {
	s := New()
	s.add(`quote"key`, "line\nbreak", `back\slash`, "<tag>")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, s.Categories(), decoded.Categories())
	assert.Equal(t, s.Entries(`quote"key`), decoded.Entries(`quote"key`))
}

func TestReset_RestoresDefaults(t *testing.T) {
	b := newMemoryBackend()
	s, _, err := Default().AddEntry("pets", "Good dog.")
	require.NoError(t, err)
	require.NoError(t, Save(b, s))

	require.NoError(t, Reset(b))

	_, ok := b.items[StorageKey]
	assert.False(t, ok)
	loaded, err := Load(b)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestReset_NilBackend(t *testing.T) {
	assert.NoError(t, Reset(nil))
}
