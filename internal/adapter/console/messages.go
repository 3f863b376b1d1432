package console

import "github.com/leonelquinteros/gotext"

// localize maps the fixed game messages onto catalog keys. Anything it does
// not recognise is printed as is.
func localize(msg string) string {
	switch msg {
	case "Player stands.":
		return gotext.Get("Player stands.")
	case "Player couldn't move; player stands.":
		return gotext.Get("Player couldn't move; player stands.")
	case "Player moved north.":
		return gotext.Get("Player moved north.")
	case "Player moved east.":
		return gotext.Get("Player moved east.")
	case "Player moved south.":
		return gotext.Get("Player moved south.")
	case "Player moved west.":
		return gotext.Get("Player moved west.")
	case "Player walked into a cyborg and died.":
		return gotext.Get("Player walked into a cyborg and died.")
	case "Player is dead.":
		return gotext.Get("Player is dead.")
	case "Some cyborgs have been destroyed.":
		return gotext.Get("Some cyborgs have been destroyed.")
	case "No cyborgs were destroyed.":
		return gotext.Get("No cyborgs were destroyed.")
	case "You win.":
		return gotext.Get("You win.")
	case "You lose.":
		return gotext.Get("You lose.")
	}
	return msg
}
