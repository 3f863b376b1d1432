package game

import (
	"context"
	"fmt"

	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/config"
	"cyborgarena/internal/domain/arena"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Deps struct {
	Random  arena.Random
	Journal ports.TurnJournal
	Metrics ports.TurnMetrics
}

// Session drives one game: it owns the arena and alternates player turns with
// cyborg turns until the player dies or every cyborg is gone.
type Session struct {
	arena   *arena.Arena
	state   State
	round   int
	journal ports.TurnJournal
	metrics ports.TurnMetrics
}

// NewSession builds an arena from cfg and fills it with a random layout.
func NewSession(ctx context.Context, cfg config.Config, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout := Layout{Rows: cfg.Rows, Cols: cfg.Cols, Cyborgs: cfg.Cyborgs, WallDensity: cfg.WallDensity}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	a, err := arena.NewArena(cfg.Rows, cfg.Cols, cfg.Rules(), deps.Random)
	if err != nil {
		return nil, err
	}
	if err := populate(a, layout, deps.Random); err != nil {
		return nil, err
	}
	hlog.CtxInfof(ctx, "session layout rows=%d cols=%d cyborgs=%d walls=%d channels=%d",
		cfg.Rows, cfg.Cols, a.CyborgCount(), layout.wallCount(), cfg.Channels)
	return NewSessionWithArena(ctx, a, deps), nil
}

// NewSessionWithArena adopts an arena that was laid out by the caller.
func NewSessionWithArena(ctx context.Context, a *arena.Arena, deps Deps) *Session {
	s := &Session{
		arena:   a,
		journal: deps.Journal,
		metrics: deps.Metrics,
	}
	s.state = s.settle(StateAwaitingPlayerMove)
	s.record(ctx, ports.PhaseSetup, "", a.Render(""))
	return s
}

func (s *Session) Arena() *arena.Arena { return s.arena }
func (s *Session) State() State        { return s.state }
func (s *Session) Round() int          { return s.round }

// settle derives the state that follows a resolved turn; next is used when
// nothing terminal happened.
func (s *Session) settle(next State) State {
	p := s.arena.Player()
	switch {
	case p == nil:
		return StateNoPlayer
	case p.IsDead():
		return StateLost
	case s.arena.CyborgCount() == 0:
		return StateWon
	default:
		return next
	}
}

func (s *Session) TakePlayerTurn(ctx context.Context, cmd ports.PlayerCommand) (arena.Outcome, error) {
	if s.state != StateAwaitingPlayerMove {
		return arena.Outcome{}, fmt.Errorf("%w: %s", ErrWrongState, s.state)
	}
	p := s.arena.Player()

	var out arena.Outcome
	switch cmd.Kind {
	case ports.CommandAuto:
		if dir, ok := arena.RecommendMove(s.arena, p.Position()); ok {
			out = p.Move(dir)
		} else {
			out = p.Stand()
		}
	case ports.CommandStand:
		out = p.Stand()
	case ports.CommandMove:
		if !cmd.Dir.Valid() {
			return arena.Outcome{}, arena.ErrInvalidDirection
		}
		out = p.Move(cmd.Dir)
	default:
		return arena.Outcome{}, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Kind)
	}

	s.round++
	s.state = s.settle(StateAwaitingBroadcast)
	hlog.CtxDebugf(ctx, "round=%d player command=%s outcome=%s state=%s", s.round, cmd, out.Kind, s.state)
	if s.metrics != nil {
		s.metrics.RecordPlayerTurn(out)
	}
	s.record(ctx, ports.PhasePlayer, cmd.String(), s.arena.Render(out.Message()))
	return out, nil
}

func (s *Session) TakeCyborgsTurn(ctx context.Context, b ports.Broadcast) (arena.TurnReport, error) {
	if s.state != StateAwaitingBroadcast {
		return arena.TurnReport{}, fmt.Errorf("%w: %s", ErrWrongState, s.state)
	}
	report, err := s.arena.ResolveCyborgTurn(b.Channel, b.Dir)
	if err != nil {
		return arena.TurnReport{}, err
	}

	s.state = s.settle(StateAwaitingPlayerMove)
	hlog.CtxDebugf(ctx, "round=%d broadcast=%s responsive=%v destroyed=%d remaining=%d state=%s",
		s.round, b, report.Responsive, report.Destroyed, report.Remaining, s.state)
	if s.metrics != nil {
		s.metrics.RecordCyborgTurn(report)
	}
	s.record(ctx, ports.PhaseCyborgs, b.String(), s.arena.Render(report.Message()))
	return report, nil
}

// Play runs the turn loop against an input source and a renderer until the
// session reaches a terminal state or the source fails.
func (s *Session) Play(ctx context.Context, in ports.CommandSource, out ports.Renderer) (State, error) {
	if err := out.Render(ctx, s.arena.Render("")); err != nil {
		return s.state, err
	}
	if s.state == StateNoPlayer {
		return s.state, nil
	}

	for !s.state.Terminal() {
		cmd, err := in.NextPlayerCommand(ctx)
		if err != nil {
			return s.state, err
		}
		outcome, err := s.TakePlayerTurn(ctx, cmd)
		if err != nil {
			return s.state, err
		}
		if err := out.Render(ctx, s.arena.Render(outcome.Message())); err != nil {
			return s.state, err
		}
		if s.state.Terminal() {
			break
		}

		b, err := in.NextBroadcast(ctx)
		if err != nil {
			return s.state, err
		}
		report, err := s.TakeCyborgsTurn(ctx, b)
		if err != nil {
			return s.state, err
		}
		if err := out.Render(ctx, s.arena.Render(report.Message())); err != nil {
			return s.state, err
		}
	}

	hlog.CtxInfof(ctx, "session finished state=%s rounds=%d remaining=%d", s.state, s.round, s.arena.CyborgCount())
	if s.metrics != nil {
		s.metrics.RecordSessionEnd(string(s.state))
	}
	msg := "You win."
	if s.state == StateLost {
		msg = "You lose."
	}
	return s.state, out.Announce(ctx, msg)
}

func (s *Session) record(ctx context.Context, phase ports.TurnPhase, command string, frame arena.Frame) {
	if s.journal == nil {
		return
	}
	rec := ports.TurnRecord{Round: s.round, Phase: phase, Command: command, Frame: frame}
	if err := s.journal.Append(ctx, rec); err != nil {
		hlog.CtxWarnf(ctx, "journal append round=%d phase=%s: %v", s.round, phase, err)
	}
}
