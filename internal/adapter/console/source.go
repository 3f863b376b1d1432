package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"cyborgarena/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/leonelquinteros/gotext"
)

// Source reads commands line by line, prompting on out and re-prompting
// until a line parses. Reads happen on a background goroutine so a cancelled
// context releases a pending prompt.
type Source struct {
	in       *bufio.Reader
	out      io.Writer
	channels int

	start  sync.Once
	lines  chan readResult
	closed error
}

type readResult struct {
	line string
	err  error
}

func NewSource(in io.Reader, out io.Writer, channels int) *Source {
	return &Source{
		in:       bufio.NewReader(in),
		out:      out,
		channels: channels,
		lines:    make(chan readResult),
	}
}

func (s *Source) NextPlayerCommand(ctx context.Context) (ports.PlayerCommand, error) {
	for {
		line, err := s.prompt(ctx, gotext.Get("Your move (n/e/s/w/x or nothing): "))
		if err != nil {
			return ports.PlayerCommand{}, err
		}
		cmd, err := ParsePlayerCommand(line)
		if err == nil {
			return cmd, nil
		}
		if err := s.complain(ctx, err); err != nil {
			return ports.PlayerCommand{}, err
		}
	}
}

func (s *Source) NextBroadcast(ctx context.Context) (ports.Broadcast, error) {
	for {
		line, err := s.prompt(ctx, gotext.Get("Broadcast (e.g., 2n): "))
		if err != nil {
			return ports.Broadcast{}, err
		}
		b, err := ParseBroadcast(line, s.channels)
		if err == nil {
			return b, nil
		}
		if err := s.complain(ctx, err); err != nil {
			return ports.Broadcast{}, err
		}
	}
}

func (s *Source) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.closed != nil {
		return "", s.closed
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		return "", err
	}
	s.start.Do(func() { go s.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-s.lines:
		if res.err == nil {
			return strings.TrimRight(res.line, "\r\n"), nil
		}
		s.closed = ports.ErrInputClosed
		if !errors.Is(res.err, io.EOF) {
			s.closed = fmt.Errorf("read command: %w", res.err)
		}
		// A final line without a newline still counts.
		if errors.Is(res.err, io.EOF) && res.line != "" {
			return strings.TrimRight(res.line, "\r"), nil
		}
		return "", s.closed
	}
}

// readLines hands lines to prompt one at a time. It stops after the first
// read error, which prompt turns into a closed source.
func (s *Source) readLines() {
	for {
		line, err := s.in.ReadString('\n')
		s.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (s *Source) complain(ctx context.Context, err error) error {
	hlog.CtxDebugf(ctx, "rejected input: %v", err)
	_, werr := fmt.Fprintln(s.out, err.Error())
	return werr
}
