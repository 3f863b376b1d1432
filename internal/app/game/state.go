package game

type State string

const (
	StateAwaitingPlayerMove State = "awaiting_player_move"
	StateAwaitingBroadcast  State = "awaiting_broadcast"
	StateWon                State = "won"
	StateLost               State = "lost"
	StateNoPlayer           State = "no_player"
)

func (s State) Terminal() bool {
	switch s {
	case StateWon, StateLost, StateNoPlayer:
		return true
	}
	return false
}
