package storagetest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/c360studio/xea2rdf/storage"
	"github.com/c360studio/xea2rdf/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	src := storagetest.NewMemory()
	name := "Root"
	src.Put("t_package", storagetest.Table{
		Columns: []string{"Package_ID", "Name"},
		Rows:    [][]*string{{&name, &name}, {nil, nil}},
	})

	ctx := context.Background()
	rows, err := src.Rows(ctx, "t_package")
	require.NoError(t, err)

	count := 0
	for rows.Next() {
		count++
		assert.Equal(t, count, rows.Row().Ordinal())
	}
	assert.Equal(t, 2, count)
	require.NoError(t, rows.Err())
	require.NoError(t, rows.Close())

	_, err = src.Rows(ctx, "t_object")
	assert.ErrorIs(t, err, storage.ErrNoTable)

	boom := errors.New("boom")
	src.Failing["t_package"] = boom
	_, err = src.Rows(ctx, "t_package")
	assert.ErrorIs(t, err, boom)

	require.NoError(t, src.Close())
	assert.True(t, src.Closed())
	_, err = src.Rows(ctx, "t_package")
	assert.ErrorIs(t, err, storage.ErrClosed)
}
