package fixture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-fixtures/internal/mock"
	"github.com/MKhiriev/go-pass-fixtures/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// treeDB is an in-memory Database that records the shape of the tree.
type treeDB struct {
	nextID  int
	parents map[string]string
	groups  map[string]models.Group
	entries map[string][]models.Entry
}

func newTreeDB() (*treeDB, models.Group) {
	root := models.Group{ID: "root", Name: models.RootGroupName}
	return &treeDB{
		parents: map[string]string{},
		groups:  map[string]models.Group{root.ID: root},
		entries: map[string][]models.Entry{},
	}, root
}

func (d *treeDB) AddEntry(parent models.Group, title, username, password string) (models.Entry, error) {
	if _, ok := d.groups[parent.ID]; !ok {
		return models.Entry{}, fmt.Errorf("unknown group %q", parent.ID)
	}
	d.nextID++
	e := models.Entry{
		ID:       fmt.Sprintf("e%d", d.nextID),
		GroupID:  parent.ID,
		Title:    title,
		Username: username,
		Password: password,
	}
	d.entries[parent.ID] = append(d.entries[parent.ID], e)
	return e, nil
}

func (d *treeDB) AddGroup(parent models.Group, name string) (models.Group, error) {
	if _, ok := d.groups[parent.ID]; !ok {
		return models.Group{}, fmt.Errorf("unknown group %q", parent.ID)
	}
	d.nextID++
	g := models.Group{ID: fmt.Sprintf("g%d", d.nextID), ParentID: parent.ID, Name: name}
	d.groups[g.ID] = g
	d.parents[g.ID] = parent.ID
	return g, nil
}

func (d *treeDB) childCount(id string) int {
	n := 0
	for _, p := range d.parents {
		if p == id {
			n++
		}
	}
	return n
}

func (d *treeDB) entryCount() int {
	n := 0
	for _, es := range d.entries {
		n += len(es)
	}
	return n
}

// depth walks up to the root, failing on cycles or chains longer than limit.
func (d *treeDB) depth(t *testing.T, id string, limit int) int {
	t.Helper()
	steps := 0
	for id != "root" {
		parent, ok := d.parents[id]
		require.True(t, ok, "group %q is not attached to the tree", id)
		id = parent
		steps++
		require.LessOrEqual(t, steps, limit, "ancestor chain longer than %d", limit)
	}
	return steps
}

func TestPopulate_DepthGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)
	// no expectations: any call fails the test

	g := NewGenerator(db, NewSeededRand(1), nil)
	for _, depth := range []int{MaxDepth + 1, MaxDepth + 2, 100} {
		require.NoError(t, g.Populate(context.Background(), models.Group{ID: "root"}, 10, 101, depth))
	}
	assert.Equal(t, Stats{}, g.Stats())
}

func TestPopulate_NoDescent(t *testing.T) {
	for _, prob := range []int{0, -5, 1} {
		t.Run(fmt.Sprintf("probability %d", prob), func(t *testing.T) {
			for seed := range uint64(50) {
				db, root := newTreeDB()
				g := NewGenerator(db, NewSeededRand(seed), nil)

				require.NoError(t, g.Populate(context.Background(), root, 10, prob, 0))

				assert.Zero(t, db.childCount(root.ID))
				assert.GreaterOrEqual(t, len(db.entries[root.ID]), 1)
				assert.LessOrEqual(t, len(db.entries[root.ID]), 10)
				assert.Equal(t, Stats{Entries: len(db.entries[root.ID])}, g.Stats())
			}
		})
	}
}

func TestPopulate_CertainDescent(t *testing.T) {
	for _, prob := range []int{101, 150} {
		t.Run(fmt.Sprintf("probability %d", prob), func(t *testing.T) {
			for seed := range uint64(50) {
				db, root := newTreeDB()
				g := NewGenerator(db, NewSeededRand(seed), nil)

				require.NoError(t, g.Populate(context.Background(), root, 4, prob, 0))

				children := db.childCount(root.ID)
				assert.GreaterOrEqual(t, children, 1)
				assert.LessOrEqual(t, children, 4)
			}
		})
	}
}

func TestPopulate_FanOutBounds(t *testing.T) {
	const maxEntries = 6

	for seed := range uint64(30) {
		db, root := newTreeDB()
		g := NewGenerator(db, NewSeededRand(seed), nil)

		require.NoError(t, g.Populate(context.Background(), root, maxEntries, 99, 0))

		for id := range db.groups {
			if db.depth(t, id, MaxDepth+1) > MaxDepth {
				// created by the last descent, never populated
				continue
			}
			n := len(db.entries[id])
			assert.GreaterOrEqual(t, n, 1, "group %s has no entries", id)
			assert.LessOrEqual(t, n, maxEntries)
			assert.LessOrEqual(t, db.childCount(id), maxEntries)
		}
		assert.Equal(t, db.entryCount(), g.Stats().Entries)
		assert.Equal(t, len(db.groups)-1, g.Stats().Groups)
	}
}

func TestPopulate_TreeIsAcyclicAndBounded(t *testing.T) {
	for seed := range uint64(30) {
		db, root := newTreeDB()
		g := NewGenerator(db, NewSeededRand(seed), nil)

		// certain descent at every level still stops at MaxDepth
		require.NoError(t, g.Populate(context.Background(), root, 2, 1<<12, 0))

		deepest := 0
		for id := range db.groups {
			deepest = max(deepest, db.depth(t, id, MaxDepth+1))
		}
		assert.Equal(t, MaxDepth+1, deepest)
		assert.Equal(t, MaxDepth, g.Stats().MaxDepth)
	}
}

func TestPopulate_EntryShapes(t *testing.T) {
	db, root := newTreeDB()
	g := NewGenerator(db, NewSeededRand(3), nil)

	require.NoError(t, g.Populate(context.Background(), root, 10, 0, 0))

	tags := allTags()
	for _, e := range db.entries[root.ID] {
		_, title, _ := splitTag(e.Title, tags)
		assert.True(t, isLowerLetters(title) && len(title) >= 2 && len(title) <= 11, "title %q", e.Title)

		tag, username, hasTag := splitTag(e.Username, tags)
		if hasTag {
			assert.NotContains(t, SecurityTags, strings.ToLower(tag), "username carries a security tag")
		}
		assert.True(t, isLowerLetters(username) && len(username) >= 2 && len(username) <= 11, "username %q", e.Username)

		assert.True(t, isLowerLetters(e.Password), "password %q", e.Password)
		assert.GreaterOrEqual(t, len(e.Password), 2)
		assert.LessOrEqual(t, len(e.Password), 101)
	}
}

func TestPopulate_ChildGroupNamesAreUntagged(t *testing.T) {
	db, root := newTreeDB()
	g := NewGenerator(db, NewSeededRand(5), nil)

	require.NoError(t, g.Populate(context.Background(), root, 5, 101, 0))

	for id, grp := range db.groups {
		if id == root.ID {
			continue
		}
		assert.True(t, isLowerLetters(grp.Name), "group name %q", grp.Name)
	}
}

func TestPopulate_SameSeedSameTree(t *testing.T) {
	dbA, rootA := newTreeDB()
	dbB, rootB := newTreeDB()

	require.NoError(t, NewGenerator(dbA, NewSeededRand(99), nil).Populate(context.Background(), rootA, 10, 99, 0))
	require.NoError(t, NewGenerator(dbB, NewSeededRand(99), nil).Populate(context.Background(), rootB, 10, 99, 0))

	assert.Equal(t, dbA.groups, dbB.groups)
	assert.Equal(t, dbA.entries, dbB.entries)
}

func TestPopulate_AddEntryErrorPropagatesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)
	errBoom := errors.New("disk full")

	root := models.Group{ID: "root"}
	db.EXPECT().AddEntry(root, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Entry{}, errBoom)

	err := NewGenerator(db, NewSeededRand(1), nil).Populate(context.Background(), root, 10, 101, 0)
	assert.Same(t, errBoom, err)
}

func TestPopulate_AddGroupErrorPropagatesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)
	errBoom := errors.New("invalid destination")

	root := models.Group{ID: "root"}
	db.EXPECT().AddEntry(root, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Entry{ID: "e"}, nil).MinTimes(1).MaxTimes(10)
	db.EXPECT().AddGroup(root, gomock.Any()).Return(models.Group{}, errBoom)

	g := NewGenerator(db, NewSeededRand(1), nil)
	err := g.Populate(context.Background(), root, 10, 101, 0)
	assert.Same(t, errBoom, err)
	assert.Zero(t, g.Stats().Groups)
}

func TestPopulate_ChildGroupsAttachToParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)

	root := models.Group{ID: "root"}
	child := models.Group{ID: "child", ParentID: "root"}

	db.EXPECT().AddEntry(root, gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Entry{}, nil).AnyTimes()
	db.EXPECT().AddGroup(root, gomock.Any()).Return(child, nil).MinTimes(1).MaxTimes(3)
	db.EXPECT().AddEntry(child, gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	// children of a MaxDepth group sit below the depth guard and stay empty
	db.EXPECT().AddGroup(child, gomock.Any()).Times(0)

	require.NoError(t, NewGenerator(db, NewSeededRand(8), nil).Populate(context.Background(), root, 3, 101, MaxDepth))
}

func TestPopulate_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockDatabase(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewGenerator(db, NewSeededRand(1), nil).Populate(ctx, models.Group{ID: "root"}, 10, 99, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
