package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trainline/backend/internal/domain"
)

func TestStationRepo_Append_AssignsPositions(t *testing.T) {
	lines, stations := newTestRepos(t)
	ctx := context.Background()

	parent, err := lines.Create(ctx, domain.Line{Name: "Red Line SB"}, nil)
	require.NoError(t, err)

	names := []string{"Howard", "Jarvis", "Morse", "Howard", ""}
	for i, name := range names {
		got, err := stations.Append(ctx, parent.ID, name)
		require.NoError(t, err)
		assert.Equal(t, i, got.Position)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, parent.ID, got.LineID)
		assert.NotEqual(t, uuid.UUID{}, got.ID)
	}

	list, err := stations.ListByLineID(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, s := range list {
		assert.Equal(t, names[i], s.Name)
		assert.Equal(t, i, s.Position)
	}
}

func TestStationRepo_Append_AfterInitialStation(t *testing.T) {
	lines, stations := newTestRepos(t)
	ctx := context.Background()

	parent, err := lines.Create(ctx, domain.Line{Name: "Red Line SB"}, strPtr("Howard"))
	require.NoError(t, err)

	got, err := stations.Append(ctx, parent.ID, "Jarvis")

	require.NoError(t, err)
	assert.Equal(t, 1, got.Position)
}

func TestStationRepo_Append_UnknownLine(t *testing.T) {
	_, stations := newTestRepos(t)

	_, err := stations.Append(context.Background(), uuid.New(), "Howard")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStationRepo_ListByLineID_UnknownLineIsEmpty(t *testing.T) {
	_, stations := newTestRepos(t)

	list, err := stations.ListByLineID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStationRepo_Append_InvalidText(t *testing.T) {
	lines, stations := newTestRepos(t)
	ctx := context.Background()

	parent, err := lines.Create(ctx, domain.Line{Name: "Red Line SB"}, nil)
	require.NoError(t, err)

	_, err = stations.Append(ctx, parent.ID, "How\x00ard")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
