package alttex

import (
	"regexp"
	"strings"
)

var blanks = regexp.MustCompile(`[ \t]+`)

type frame struct {
	name   string
	raised bool
}

// CommandStack records active commands. Enter opens a scope and Leave drops every command pushed since,
// so Top always names the innermost enclosing command.
type CommandStack struct {
	frames []frame
	marks  []int
}

func (s *CommandStack) Push(name string) {
	s.frames = append(s.frames, frame{name: name})
}

// Pop removes the top command unless it belongs to an enclosing scope.
func (s *CommandStack) Pop() {
	if len(s.frames) > s.floor() {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Top returns the innermost active command or an empty string.
func (s *CommandStack) Top() string {
	if len(s.frames) == 0 {
		return ""
	}

	return s.frames[len(s.frames)-1].name
}

// Raised reports whether the innermost command has already seen a superscript bound.
func (s *CommandStack) Raised() bool {
	return len(s.frames) > 0 && s.frames[len(s.frames)-1].raised
}

func (s *CommandStack) Raise() {
	if len(s.frames) > 0 {
		s.frames[len(s.frames)-1].raised = true
	}
}

func (s *CommandStack) Enter() {
	s.marks = append(s.marks, len(s.frames))
}

func (s *CommandStack) Leave() {
	if len(s.marks) == 0 {
		return
	}

	s.frames = s.frames[:s.marks[len(s.marks)-1]]
	s.marks = s.marks[:len(s.marks)-1]
}

// Scope enters a new scope and returns the function leaving it, meant for defer.
func (s *CommandStack) Scope() func() {
	s.Enter()
	return s.Leave
}

func (s *CommandStack) Len() int {
	return len(s.frames)
}

func (s *CommandStack) floor() int {
	if len(s.marks) == 0 {
		return 0
	}

	return s.marks[len(s.marks)-1]
}

// EnvironmentStack tracks array-like environments the renderer is in.
type EnvironmentStack []string

func (e *EnvironmentStack) Push(name string) {
	*e = append(*e, name)
}

// Pop leaves the innermost environment with the given name.
func (e *EnvironmentStack) Pop(name string) {
	for i := len(*e) - 1; i >= 0; i-- {
		if (*e)[i] == name {
			*e = append((*e)[:i], (*e)[i+1:]...)
			return
		}
	}
}

func (e EnvironmentStack) Top() string {
	if len(e) == 0 {
		return ""
	}

	return e[len(e)-1]
}

// InArray reports whether the innermost environment separates cells with & and rows with \\.
func (e EnvironmentStack) InArray() bool {
	return arrays[e.Top()]
}

// Accumulator collects phrase fragments of one rendering.
type Accumulator struct {
	fragments []string
}

func (a *Accumulator) Add(fragments ...string) {
	a.fragments = append(a.fragments, fragments...)
}

// Retract drops the last fragment.
func (a *Accumulator) Retract() {
	if len(a.fragments) > 0 {
		a.fragments = a.fragments[:len(a.fragments)-1]
	}
}

// InsertBeforeLast puts fragment in front of the last one.
func (a *Accumulator) InsertBeforeLast(fragment string) {
	if len(a.fragments) == 0 {
		a.fragments = append(a.fragments, fragment)
		return
	}

	last := a.fragments[len(a.fragments)-1]
	a.fragments = append(a.fragments[:len(a.fragments)-1], fragment, last)
}

func (a *Accumulator) Fragments() []string {
	return append([]string(nil), a.fragments...)
}

func (a *Accumulator) Len() int {
	return len(a.fragments)
}

// String joins fragments with single spaces.
func (a *Accumulator) String() string {
	return join(a.fragments)
}

func join(fragments []string) string {
	return strings.TrimSpace(blanks.ReplaceAllString(strings.Join(fragments, " "), " "))
}

type span struct {
	from, to int
}

// consumed is a stack of offset ranges already rendered by a nested call.
type consumed []span

func (c *consumed) mark(from, to int) {
	*c = append(*c, span{from: from, to: to})
}

// covers checks the most recently marked range only.
func (c consumed) covers(offset int) bool {
	if len(c) == 0 {
		return false
	}

	last := c[len(c)-1]
	return offset >= last.from && offset < last.to
}
