package status

import (
	"context"
	"errors"
	"fmt"

	"cyborgarena/internal/app/game"
	"cyborgarena/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Session *game.Session
	Metrics ports.MetricsReader
}

func (u UseCase) Execute(_ context.Context) (Response, error) {
	if u.Session == nil {
		return Response{}, ErrInvalidRequest
	}
	a := u.Session.Arena()
	resp := Response{
		State:     u.Session.State(),
		Rounds:    u.Session.Round(),
		Remaining: a.CyborgCount(),
	}
	if p := a.Player(); p != nil {
		resp.PlayerDead = p.IsDead()
	}
	if u.Metrics != nil {
		resp.Metrics = u.Metrics.Snapshot()
	}
	return resp, nil
}

// Summary is the one-line report printed when a session ends.
func (r Response) Summary() string {
	return fmt.Sprintf("state=%s rounds=%d remaining=%d responsive=%d destroyed=%d",
		r.State, r.Rounds, r.Remaining, r.Metrics.ResponsiveRounds, r.Metrics.CyborgsDestroyed)
}
