package postgres_test

import (
	"Chipster/models/postgres"
	"Chipster/services/poker"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRowRoundTrip(t *testing.T) {
	room, err := poker.NewRoom("ABC234", "Home game", poker.Seat{ID: "s0", UserID: "u0", Name: "Alice"}, poker.DefaultSettings)
	require.NoError(t, err)
	room, err = poker.AddPlayer(room, poker.Seat{ID: "s1", UserID: "u1", Name: "Bob"})
	require.NoError(t, err)
	room, err = poker.AddPlayer(room, poker.Seat{ID: "s2", UserID: "u2", Name: "Carol"})
	require.NoError(t, err)
	room, err = poker.StartHand(room)
	require.NoError(t, err)
	room, _, err = poker.ApplyAction(room, poker.Action{PlayerID: "s0", Type: poker.Call})
	require.NoError(t, err)

	row, err := postgres.NewRoomRow(room, "hash")
	require.NoError(t, err)
	assert.Equal(t, "ABC234", row.ID)
	assert.Len(t, row.Players, 3)
	assert.Equal(t, "ABC234", row.Players[2].RoomID)
	assert.JSONEq(t, `{"s0":true}`, string(row.ActedPlayers))

	// Rows come back from the database in any order.
	row.Players[0], row.Players[2] = row.Players[2], row.Players[0]

	back, err := row.Snapshot()
	require.NoError(t, err)
	assert.True(t, back.HasPassword)
	back.HasPassword = false
	assert.Equal(t, room, back)
}

func TestSnapshotRejectsUnknownRound(t *testing.T) {
	row := &postgres.Room{ID: "ABC234", CurrentRound: "fifth street"}
	_, err := row.Snapshot()
	assert.Error(t, err)
}

func TestSnapshotOfEmptyJSONColumns(t *testing.T) {
	row := &postgres.Room{ID: "ABC234", CurrentRound: "preflop", ActedPlayers: []byte("null")}

	s, err := row.Snapshot()
	require.NoError(t, err)
	assert.NotNil(t, s.ActedPlayers)
	assert.NotNil(t, s.CommunityCards)
	assert.False(t, s.HasPassword)
}

func TestGenerateRoomCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := postgres.GenerateRoomCode(6)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, strings.ContainsRune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", c), "unexpected %q in %s", c, code)
		}
	}
}

func TestStateColumnsLeavePasswordAlone(t *testing.T) {
	row := &postgres.Room{ID: "ABC234", PasswordHash: "secret"}
	cols := row.StateColumns()
	assert.NotContains(t, cols, "password_hash")
	assert.NotContains(t, cols, "created_at")
	assert.Contains(t, cols, "acted_players")
}
