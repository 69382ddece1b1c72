// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"
	"io"
)

// Op identifies a recorded Surface call.
type Op uint8

const (
	// OpClip records a Clip call.
	OpClip Op = iota

	// OpDrawText records a DrawText call.
	OpDrawText
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpClip:
		return "Clip"
	case OpDrawText:
		return "DrawText"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Command is one recorded Surface call. Fields not used by Op are zero.
type Command struct {
	Op Op

	// Rect is the clip rectangle of an OpClip.
	Rect Rect

	// Text, X, Baseline, Font and Fill are the arguments of an OpDrawText.
	Text     string
	X        float64
	Baseline float64
	Font     string
	Fill     color.Color
}

// Recorder captures drawing operations as commands instead of drawing.
// Use Replay to send them to another Surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clip implements Surface.
func (r *Recorder) Clip(rect Rect) {
	r.commands = append(r.commands, Command{Op: OpClip, Rect: rect})
}

// DrawText implements Surface.
func (r *Recorder) DrawText(s string, x, baseline float64, font string, fill color.Color) {
	r.commands = append(r.commands, Command{
		Op:       OpDrawText,
		Text:     s,
		X:        x,
		Baseline: baseline,
		Font:     font,
		Fill:     fill,
	})
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// Texts returns the text of every recorded DrawText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if c.Op == OpDrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay issues the recorded commands on dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, c := range r.commands {
		switch c.Op {
		case OpClip:
			dst.Clip(c.Rect)
		case OpDrawText:
			dst.DrawText(c.Text, c.X, c.Baseline, c.Font, c.Fill)
		}
	}
}

// Encode implements Canvas by writing one line per command.
func (r *Recorder) Encode(w io.Writer) error {
	for _, c := range r.commands {
		var err error
		switch c.Op {
		case OpClip:
			_, err = fmt.Fprintf(w, "%s %g %g %g %g\n", c.Op, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
		case OpDrawText:
			_, err = fmt.Fprintf(w, "%s %g %g %q %q\n", c.Op, c.X, c.Baseline, c.Font, c.Text)
		}
		if err != nil {
			return fmt.Errorf("surface: encode commands: %w", err)
		}
	}
	return nil
}
