package jsonfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kiryu-dev/othello/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "position.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPosition(t *testing.T) {
	path := writeFile(t, `{
  "board": [
    "........",
    "........",
    "........",
    "...WB...",
    "...BW...",
    "........",
    "........",
    "........"
  ],
  "to_move": "light"
}`)
	pos, err := New().LoadPosition(path)
	require.NoError(t, err)
	assert.Equal(t, domain.NewBoard(), pos.Board)
	assert.Equal(t, domain.Light, pos.ToMove)
}

func TestLoadPositionDefaultsToDark(t *testing.T) {
	path := writeFile(t, `{"board": ["BW......","........","........","........","........","........","........","........"]}`)
	pos, err := New().LoadPosition(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Dark, pos.ToMove)
	assert.Equal(t, domain.Score{Dark: 1, Light: 1}, pos.Board.Score())
}

func TestLoadPositionErrors(t *testing.T) {
	_, err := New().LoadPosition(writeFile(t, `{"board": ["........"]}`))
	assert.True(t, errors.Is(err, domain.ErrInvalidBoard), "got %v", err)

	rows := `["........","........","........","...WQ...","...BW...","........","........","........"]`
	_, err = New().LoadPosition(writeFile(t, `{"board": `+rows+`, "to_move": "dark"}`))
	assert.True(t, errors.Is(err, domain.ErrInvalidBoard), "got %v", err)

	_, err = New().LoadPosition(writeFile(t, `{"to_move": "light"}`))
	assert.True(t, errors.Is(err, domain.ErrInvalidBoard), "got %v", err)

	_, err = New().LoadPosition(writeFile(t, `{"board": [], "to_move": "red"}`))
	assert.Error(t, err)

	_, err = New().LoadPosition(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "open position file")
}

func TestSaveRecord(t *testing.T) {
	state := &domain.GameState{
		Uuid:        "game-1",
		Board:       domain.NewBoard(),
		CurrentMove: domain.Light,
		Controllers: map[domain.Side]domain.Controller{
			domain.Dark:  domain.Human,
			domain.Light: domain.Computer,
		},
		Status: domain.Finished,
		History: []domain.Turn{
			{Side: domain.Dark, Move: &domain.Move{Row: 2, Col: 3}},
			{Side: domain.Light, Pass: true},
		},
	}
	winner := domain.Dark
	var buf bytes.Buffer
	require.NoError(t, New().SaveRecord(&buf, state, domain.GameResult{
		Score:  domain.Score{Dark: 2, Light: 2},
		Winner: &winner,
	}))
	out := buf.String()
	assert.Contains(t, out, `"uuid":"game-1"`)
	assert.Contains(t, out, `"...WB..."`)
	assert.Contains(t, out, `"current_move":"light"`)
	assert.Contains(t, out, `"status":"finished"`)
	assert.Contains(t, out, `{"side":"dark","move":{"row":2,"col":3}}`)
	assert.Contains(t, out, `{"side":"light","pass":true}`)
	assert.Contains(t, out, `"result":{"score":{"dark":2,"light":2},"winner":"dark"}`)
	assert.Contains(t, out, `"light":"computer"`)
	assert.Equal(t, byte('\n'), out[len(out)-1])
}
