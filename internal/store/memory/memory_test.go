package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/klimatr26/booking-hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

func (w widget) Key() string { return w.ID }

func (w widget) WithKey(id string) widget {
	w.ID = id
	return w
}

func TestStore_CreateAssignsID(t *testing.T) {
	s := New[widget]()

	w, err := s.Create(context.Background(), widget{Color: "red"})

	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)

	got, err := s.FindByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, "red", got.Color)
}

func TestStore_CreateKeepsGivenID(t *testing.T) {
	s := New[widget]()

	w, err := s.Create(context.Background(), widget{ID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, "w1", w.ID)

	_, err = s.Create(context.Background(), widget{ID: "w1"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestStore_FindByID_Missing(t *testing.T) {
	s := New[widget]()

	_, err := s.FindByID(context.Background(), "nope")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_UpdateKeepsID(t *testing.T) {
	s := New[widget]()
	ctx := context.Background()
	_, err := s.Create(ctx, widget{ID: "w1", Color: "red"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, "w1", func(w *widget) error {
		w.ID = "hijacked"
		w.Color = "blue"
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "w1", updated.ID)
	assert.Equal(t, "blue", updated.Color)

	_, err = s.FindByID(ctx, "hijacked")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_UpdateMissing(t *testing.T) {
	s := New[widget]()

	_, err := s.Update(context.Background(), "nope", func(*widget) error { return nil })

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_UpdateMutateErrorLeavesValue(t *testing.T) {
	s := New[widget]()
	ctx := context.Background()
	_, err := s.Create(ctx, widget{ID: "w1", Color: "red"})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update(ctx, "w1", func(w *widget) error {
		w.Color = "green"
		return boom
	})

	assert.ErrorIs(t, err, boom)
	got, _ := s.FindByID(ctx, "w1")
	assert.Equal(t, "red", got.Color)
}

func TestStore_Delete(t *testing.T) {
	s := New[widget]()
	ctx := context.Background()
	_, _ = s.Create(ctx, widget{ID: "w1"})
	_, _ = s.Create(ctx, widget{ID: "w2"})

	ok, err := s.Delete(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, ok)

	all, _ := s.FindAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "w2", all[0].ID)
}

func TestStore_FindByField(t *testing.T) {
	s := New[widget]()
	ctx := context.Background()
	_, _ = s.Create(ctx, widget{ID: "w1", Color: "red", Size: 1})
	_, _ = s.Create(ctx, widget{ID: "w2", Color: "blue", Size: 2})
	_, _ = s.Create(ctx, widget{ID: "w3", Color: "red", Size: 3})

	reds, err := s.FindByField(ctx, "color", "red")
	require.NoError(t, err)
	require.Len(t, reds, 2)
	assert.Equal(t, "w1", reds[0].ID)
	assert.Equal(t, "w3", reds[1].ID)

	sized, err := s.FindByField(ctx, "size", 2)
	require.NoError(t, err)
	require.Len(t, sized, 1)
	assert.Equal(t, "w2", sized[0].ID)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := New[widget]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Create(ctx, widget{Color: "red"})
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
