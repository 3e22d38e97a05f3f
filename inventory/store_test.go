package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Insert(t *testing.T) {
	s := NewStore()

	rec, err := s.Insert("node1", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "node1.garmin.com", rec.Name)
	assert.Equal(t, []string{"10.0.0.1"}, rec.AlternateNames)
	assert.Equal(t, DefaultRequestor, rec.RequestedBy)
	assert.False(t, rec.ClientAuthEnabled)

	got, ok := s.Get("node1")
	require.True(t, ok)
	assert.Same(t, rec, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_InsertDuplicate(t *testing.T) {
	s := NewStore()

	_, err := s.Insert("node1", "10.0.0.1")
	require.NoError(t, err)

	_, err = s.Insert("node1", "10.0.0.9")
	require.ErrorIs(t, err, ErrDuplicateNode)

	rec, _ := s.Get("node1")
	assert.Equal(t, []string{"10.0.0.1"}, rec.AlternateNames, "first record kept")
}

func TestStore_InsertOverwrite(t *testing.T) {
	s := NewStore(WithOverwrite(true))

	for _, n := range []string{"a", "b"} {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	_, err := s.Insert("a", "10.0.0.9")
	require.NoError(t, err)

	rec, _ := s.Get("a")
	assert.Equal(t, []string{"10.0.0.9"}, rec.AlternateNames)
	assert.Equal(t, []string{"a", "b"}, s.Keys(), "position of the first sighting")
}

func TestStore_Options(t *testing.T) {
	s := NewStore(WithDomain(".example.org."), WithRequestor("ops"))

	rec, err := s.Insert("db", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "db.example.org", rec.Name)
	assert.Equal(t, "ops", rec.RequestedBy)

	bare := NewStore(WithDomain(""))
	assert.Equal(t, "db", bare.Qualify("db"))
}

func TestStore_MergeCluster(t *testing.T) {
	s := NewStore()

	_, err := s.Insert("node1", "ip0")
	require.NoError(t, err)

	rec, err := s.MergeCluster("node1", "node1-a", "ip1")
	require.NoError(t, err)
	assert.Equal(t, []string{"node1-a", "ip0", "ip1"}, rec.AlternateNames)

	rec, err = s.MergeCluster("node1", "node1-b", "ip2")
	require.NoError(t, err)
	assert.Equal(t, []string{"node1-a", "node1-b", "ip0", "ip1", "ip2"}, rec.AlternateNames)

	assert.Equal(t, 1, s.Len(), "members never get a record")
}

func TestStore_MergeQualified(t *testing.T) {
	s := NewStore(WithQualifiedMembers(true))

	_, err := s.Insert("node1", "ip0")
	require.NoError(t, err)

	rec, err := s.MergeCluster("node1", "node1-a", "ip1")
	require.NoError(t, err)
	assert.Equal(t, []string{"node1-a.garmin.com", "ip0", "ip1"}, rec.AlternateNames)
}

func TestStore_MergeUnknownParent(t *testing.T) {
	s := NewStore()

	_, err := s.MergeCluster("node9", "node9-a", "10.0.0.2")
	require.ErrorIs(t, err, ErrUnknownParent)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Add(ctx, Entry{Line: 1, Name: "node1", IP: "10.0.0.1"}))
	require.NoError(t, s.Add(ctx, Entry{Line: 2, Name: "node1-a", IP: "10.0.0.2"}))

	err := s.Add(ctx, Entry{Line: 3, Name: "node2-a", IP: "10.0.0.3"})
	require.ErrorIs(t, err, ErrUnknownParent)

	var e *Error
	require.True(t, errors.As(err, &e))

	attrs := map[string]string{}
	for _, a := range e.Attrs() {
		attrs[a.Key] = a.Value.String()
	}

	assert.Equal(t, "node2", attrs["parent"])
	assert.Equal(t, "3", attrs["line"])

	err = s.Add(ctx, Entry{Line: 4, IP: "10.0.0.4"})
	assert.ErrorIs(t, err, ErrDegenerateEntry)
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore()

	for _, n := range []string{"node1", "node2", "db"} {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	rec, err := s.Lookup("db")
	require.NoError(t, err)
	assert.Equal(t, "db.garmin.com", rec.Name)

	_, err = s.Lookup("nod1")
	require.ErrorIs(t, err, ErrQueryNotFound)
}

func TestStore_All(t *testing.T) {
	s := NewStore()
	names := []string{"c", "a", "b"}

	for _, n := range names {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	var keys []string
	for key, rec := range s.All() {
		keys = append(keys, key)
		assert.Equal(t, key+".garmin.com", rec.Name)
	}

	assert.Equal(t, names, keys)

	keys = keys[:0]
	for key := range s.All() {
		keys = append(keys, key)

		break
	}

	assert.Equal(t, []string{"c"}, keys)
}

func TestStore_Select(t *testing.T) {
	s := NewStore()

	for _, n := range []string{"a", "bb", "ccc"} {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	sub, err := s.Select(func(key string, _ *Record) (bool, error) {
		return len(key) > 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bb", "ccc"}, sub.Keys())

	boom := errors.New("boom")
	_, err = s.Select(func(string, *Record) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_Only(t *testing.T) {
	s := NewStore()

	for _, n := range []string{"a", "b"} {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	sub, err := s.Only("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, sub.Keys())

	_, err = s.Only("z")
	assert.ErrorIs(t, err, ErrQueryNotFound)
}

func TestStore_Suggest(t *testing.T) {
	s := NewStore()

	for _, n := range []string{"node1", "node2", "db-primary"} {
		_, err := s.Insert(n, "10.0.0.1")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"node1"}, s.Suggest("nod1", 3))
	assert.Len(t, s.Suggest("node", 1), 1)
	assert.Empty(t, s.Suggest("zzz", 3))
	assert.Empty(t, s.Suggest("", 3))
	assert.Empty(t, NewStore().Suggest("node", 3))
}
