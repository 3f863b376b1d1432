package game

import "errors"

var (
	ErrInvalidCyborgCount = errors.New("invalid number of cyborgs")
	ErrArenaTooSmall      = errors.New("arena too small to hold the player and cyborgs")
	ErrInvalidWallDensity = errors.New("invalid wall density")
	ErrLayoutExhausted    = errors.New("random layout did not converge")
	ErrWrongState         = errors.New("command not allowed in current session state")
	ErrInvalidCommand     = errors.New("invalid player command")
)
