package replay

import (
	"context"
	"errors"

	"cyborgarena/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Journal ports.TurnJournal
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || req.FromRound < 0 || req.ToRound < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.ToRound > 0 && req.FromRound > req.ToRound {
		return Response{}, ErrInvalidRequest
	}
	records, err := u.Journal.List(ctx, req.Limit)
	if err != nil {
		return Response{}, err
	}
	records = filterByRoundWindow(records, req.FromRound, req.ToRound)
	return Response{Records: records, Latest: reconstruct(records)}, nil
}

func filterByRoundWindow(records []ports.TurnRecord, from, to int) []ports.TurnRecord {
	if from <= 0 && to <= 0 {
		return records
	}
	out := make([]ports.TurnRecord, 0, len(records))
	for _, rec := range records {
		if from > 0 && rec.Round < from {
			continue
		}
		if to > 0 && rec.Round > to {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func reconstruct(records []ports.TurnRecord) Latest {
	var latest Latest
	for _, rec := range records {
		latest.Round = rec.Round
		latest.Remaining = rec.Frame.Remaining
		latest.Player = rec.Frame.Player
	}
	return latest
}
