package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/entity"
)

// drain streams st to the end and returns the sample count.
func drain(t *testing.T, st beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := st.Stream(buf)
		for _, s := range buf[:n] {
			assert.True(t, s[0] >= -1 && s[0] <= 1, "sample out of range: %f", s[0])
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return 0
}

func TestCuesHaveExpectedLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	assert.Equal(t, sr.N(150*time.Millisecond), drain(t, CorrectCue(sr)))
	assert.Equal(t, sr.N(150*time.Millisecond), drain(t, WrongCue(sr)))
	assert.Equal(t, sr.N(400*time.Millisecond), drain(t, CrashCue(sr)))
}

type recorder struct {
	calls []string
}

func (r *recorder) Correct() { r.calls = append(r.calls, "correct") }
func (r *recorder) Wrong()   { r.calls = append(r.calls, "wrong") }
func (r *recorder) Crash()   { r.calls = append(r.calls, "crash") }
func (r *recorder) Close()   {}

func TestPlayMapsEvents(t *testing.T) {
	r := &recorder{}
	Play(r, []game.Event{
		{Type: game.EventRoundStarted, Round: 1},
		{Type: game.EventTileHit, Tile: entity.Tile{Correct: true}},
		{Type: game.EventTileHit, Tile: entity.Tile{Value: 7}},
		{Type: game.EventSpeedUp, Speed: 135},
		{Type: game.EventGameOver},
		{Type: game.EventFinalScore, Score: 7},
	})
	assert.Equal(t, []string{"correct", "wrong", "crash"}, r.calls)
}

func TestNopIsSilent(t *testing.T) {
	var p Player = Nop{}
	Play(p, []game.Event{{Type: game.EventGameOver}})
	p.Close()
}
