package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_WithSearch(t *testing.T) {
	st := State{Page: 4, PageSize: 25, LastSearch: "gawan"}

	same := st.WithSearch(" gawan ")
	assert.Equal(t, 4, same.Page)

	changed := st.WithSearch("grene")
	assert.Equal(t, 1, changed.Page)
	assert.Equal(t, "grene", changed.LastSearch)

	// The receiver is untouched.
	assert.Equal(t, 4, st.Page)
	assert.Equal(t, "gawan", st.LastSearch)
}

func TestState_WithPageAndSize(t *testing.T) {
	st := State{Page: 3, PageSize: 10}

	assert.Equal(t, 1, st.WithPage(0).Page)
	assert.Equal(t, 7, st.WithPage(7).Page)

	resized, err := st.WithPageSize(50)
	require.NoError(t, err)
	assert.Equal(t, 50, resized.PageSize)
	assert.Equal(t, 1, resized.Page)

	kept, err := st.WithPageSize(10)
	require.NoError(t, err)
	assert.Equal(t, 3, kept.Page)

	_, err = st.WithPageSize(30)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestState_Paging(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		total      int
		wantOffset int
		wantPages  int
	}{
		{name: "first page", state: State{Page: 1, PageSize: 10}, total: 0, wantOffset: 0, wantPages: 1},
		{name: "exact fit", state: State{Page: 2, PageSize: 10}, total: 20, wantOffset: 10, wantPages: 2},
		{name: "partial last page", state: State{Page: 3, PageSize: 25}, total: 51, wantOffset: 50, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.state.Offset())
			assert.Equal(t, tt.wantPages, tt.state.TotalPages(tt.total))
		})
	}
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore(0, 100)
	assert.Error(t, err)

	_, err = NewStore(time.Minute, 7)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestStore_GetSaveExpire(t *testing.T) {
	store, err := NewStore(time.Hour, 100)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	fresh := store.Get("unknown")
	_, err = uuid.Parse(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Page)
	assert.Equal(t, 100, fresh.PageSize)
	assert.Equal(t, 0, store.Len())

	saved := store.Save(fresh.WithSearch("luf").WithPage(2))
	assert.Equal(t, now, saved.UpdatedAt)

	got := store.Get(fresh.ID)
	assert.Equal(t, "luf", got.LastSearch)
	assert.Equal(t, 2, got.Page)

	now = now.Add(2 * time.Hour)
	expired := store.Get(fresh.ID)
	assert.NotEqual(t, fresh.ID, expired.ID)
	assert.Equal(t, 0, store.Len())
}
