package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game/entity"
	"github.com/ddesignmedia/catchthenumba/game/fx"
	"github.com/ddesignmedia/catchthenumba/game/manager"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/schedule"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

type Phase int

const (
	PhaseSelecting Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// ScoreSubmitter receives the final score of a session once it is revealed.
// It must not block; the call happens inside a scheduler tick.
type ScoreSubmitter interface {
	SubmitFinal(mode quiz.Mode, score int)
}

// Game is the round and session controller. All of its methods, and the
// scheduler callbacks it registers, run on the frontend's loop goroutine.
type Game struct {
	cfg   Config
	Grid  types.Grid
	sched *schedule.Scheduler
	rng   *rand.Rand

	collision *manager.CollisionManager
	spawner   *manager.SpawnManager
	state     *manager.StateManager
	particles *fx.System
	submitter ScoreSubmitter

	phase    Phase
	snake    *entity.Snake
	tiles    []entity.Tile
	queue    []quiz.Task
	task     quiz.Task
	revealed bool
	pulse    float64
	events   []Event

	tickH      schedule.Handle
	countdownH schedule.Handle
	revealH    schedule.Handle
}

// NewGame builds a controller in the Selecting phase. submitter may be nil.
func NewGame(cfg Config, sched *schedule.Scheduler, submitter ScoreSubmitter) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	grid := cfg.Grid()

	return &Game{
		cfg:       cfg,
		Grid:      grid,
		sched:     sched,
		rng:       rng,
		collision: manager.NewCollisionManager(grid),
		spawner:   manager.NewSpawnManager(grid, rng),
		state:     manager.NewStateManager(cfg.Rules()),
		particles: fx.NewSystem(grid.CellSize, rng),
		submitter: submitter,
		phase:     PhaseSelecting,
		snake:     entity.NewSnake(types.Point{}, types.RIGHT),
	}, nil
}

// Start begins a new session in the given mode, dropping whatever session
// was running. A final score still waiting for its reveal is revealed first.
func (g *Game) Start(mode quiz.Mode) error {
	queue, err := quiz.NewQueue(mode, g.cfg.MaxRounds, g.rng)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	g.cancelTimers()

	id := g.state.Reset(mode)
	g.phase = PhasePlaying
	g.particles.Clear()
	g.revealed = false
	g.pulse = 0
	g.snake = entity.NewSnake(types.Point{X: g.Grid.Width / 4, Y: g.Grid.Height / 2}, types.RIGHT)
	g.tiles = nil
	g.task = nil
	g.queue = queue
	log.Printf("session %s started: mode=%s rounds=%d", id, mode, len(queue))

	g.prepareNextRound()
	if g.phase != PhasePlaying {
		return nil
	}
	g.startCountdown()
	g.scheduleTick()
	return nil
}

// Restart goes back to mode selection. A final score still waiting for its
// reveal is revealed right away so it is not lost.
func (g *Game) Restart() {
	g.cancelTimers()
	g.phase = PhaseSelecting
	g.snake.Clear()
	g.tiles = nil
	g.queue = nil
	g.task = nil
	g.particles.Clear()
}

// SetDirection buffers a turn for the next tick. Ignored unless playing.
func (g *Game) SetDirection(d types.Direction) {
	if g.phase != PhasePlaying {
		return
	}
	g.snake.Buffer(d)
}

// cancelTimers stops the tick and the countdown and flushes a pending reveal.
func (g *Game) cancelTimers() {
	if g.sched.Active(g.revealH) {
		g.sched.Cancel(g.revealH)
		g.reveal()
	}
	g.sched.Cancel(g.tickH)
	g.sched.Cancel(g.countdownH)
	g.sched.Cancel(g.revealH)
	g.tickH, g.countdownH, g.revealH = 0, 0, 0
}

// scheduleTick (re)arms the frame tick: the game speed while playing, the
// fast visual cadence once over. The loop ends when the game is over and the
// last particle is gone.
func (g *Game) scheduleTick() {
	g.sched.Cancel(g.tickH)
	g.tickH = 0
	switch {
	case g.phase == PhasePlaying:
		g.tickH = g.sched.After(ms(g.state.State().Speed), g.tick)
	case g.phase == PhaseOver && g.particles.Len() > 0:
		g.tickH = g.sched.After(ms(g.cfg.OverTick), g.tick)
	}
}

func (g *Game) tick() {
	g.tickH = 0
	g.pulse += 0.1
	if g.phase == PhasePlaying {
		g.step()
	}
	g.particles.Update()
	g.scheduleTick()
}

// step advances the snake one cell. The order matters: the tile on the next
// cell is looked up before moving, walls and body are checked after, and a
// tile hit is scored even on the tick the snake crashes.
func (g *Game) step() {
	g.snake.ApplyBuffer()
	next := g.snake.NextHead()
	hit, hasHit := g.collision.CheckTile(next, g.tiles)
	g.snake.Move(next, hasHit)

	cause := g.collision.CheckAfterMove(g.snake)
	crashed := cause != manager.NoCollision
	if hasHit {
		g.collect(hit, crashed)
	}
	if crashed {
		g.endGame(cause)
	}
}

// collect scores a tile hit. Wrong tiles still lengthen the snake, which the
// caller already did by keeping the tail.
func (g *Game) collect(hit manager.Hit, crashed bool) {
	g.tiles = entity.RemoveTile(g.tiles, hit.Index)
	cx, cy := g.Grid.Center(hit.Tile.Cell)

	if hit.Tile.Correct {
		g.state.AwardCorrect()
		g.particles.Burst(cx, cy, fx.CorrectColor, 35, 1.2, 1.2)
		g.emit(Event{Type: EventTileHit, Tile: hit.Tile, Score: g.state.State().Score})
		if !crashed {
			g.startCountdown()
			g.prepareNextRound()
		}
		return
	}

	g.state.PenalizeWrong()
	g.particles.Burst(cx, cy, fx.WrongColor, 10, 1, 1)
	g.emit(Event{Type: EventTileHit, Tile: hit.Tile, Score: g.state.State().Score})
	if g.state.SpeedUp() {
		g.emit(Event{Type: EventSpeedUp, Speed: g.state.State().Speed})
	}
}

func (g *Game) prepareNextRound() {
	if g.state.IsOver() {
		return
	}
	if !g.state.NextRound() || len(g.queue) == 0 {
		g.endGame(manager.NoCollision)
		return
	}
	g.task = g.queue[0]
	g.queue = g.queue[1:]

	tiles, err := g.spawner.Spawn(g.task.Answer(), g.snake.Body, g.task.Decoys())
	if errors.Is(err, manager.ErrNoFreeCell) {
		log.Printf("session %s: round %d cannot spawn: %v", g.state.State().ID, g.state.State().Round, err)
		g.endGame(manager.NoCollision)
		return
	}
	g.tiles = tiles
	g.emit(Event{Type: EventRoundStarted, Round: g.state.State().Round})
}

func (g *Game) startCountdown() {
	g.sched.Cancel(g.countdownH)
	g.state.ResetCountdown()
	g.countdownH = g.sched.Every(time.Second, g.countdownTick)
}

func (g *Game) countdownTick() {
	if g.phase != PhasePlaying {
		g.sched.Cancel(g.countdownH)
		g.countdownH = 0
		return
	}
	before := g.state.State().Speed
	if g.state.TickCountdown() && g.state.State().Speed != before {
		g.emit(Event{Type: EventSpeedUp, Speed: g.state.State().Speed})
	}
}

func (g *Game) endGame(cause manager.CollisionType) {
	if !g.state.End() {
		return
	}
	g.phase = PhaseOver
	g.sched.Cancel(g.countdownH)
	g.countdownH = 0
	g.tiles = nil
	g.explodeSnake()

	st := g.state.State()
	log.Printf("session %s over: cause=%s score=%d round=%d", st.ID, cause, st.Score, st.Round)
	g.emit(Event{Type: EventGameOver, Score: st.Score, Cause: cause})
	g.revealH = g.sched.After(ms(g.cfg.RevealDelay), g.reveal)
	g.scheduleTick()
}

func (g *Game) explodeSnake() {
	for _, seg := range g.snake.Body {
		cx, cy := g.Grid.Center(seg)
		g.particles.Burst(cx, cy, fx.SnakeColor, 5, 1.5, 1.5)
	}
	g.snake.Clear()
}

// reveal surfaces the final score and hands it to the submitter when there
// is something to submit.
func (g *Game) reveal() {
	g.revealH = 0
	if g.revealed {
		return
	}
	g.revealed = true
	st := g.state.State()
	g.emit(Event{Type: EventFinalScore, Score: st.Score})
	if st.Score > 0 && g.submitter != nil {
		g.submitter.SubmitFinal(st.Mode, st.Score)
	}
}

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) State() manager.SessionState { return g.state.State() }
func (g *Game) Task() quiz.Task { return g.task }
func (g *Game) Tiles() []entity.Tile { return g.tiles }
func (g *Game) Snake() []types.Point { return g.snake.Body }
func (g *Game) Direction() types.Direction { return g.snake.Direction }
func (g *Game) Particles() *fx.System { return g.particles }
func (g *Game) Pulse() float64 { return g.pulse }
func (g *Game) Revealed() bool { return g.revealed }
func (g *Game) Config() Config { return g.cfg }
func (g *Game) Scheduler() *schedule.Scheduler { return g.sched }
