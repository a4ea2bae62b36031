package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quickmath/internal/problemgen"
	"github.com/abhisek/quickmath/internal/session"
)

// printer renders session events as plain text.
type printer struct {
	w      io.Writer
	total  int
	number int
}

func (p *printer) question(q problemgen.Question, options problemgen.OptionSet) {
	p.number++
	choices := make([]string, len(options))
	for i, o := range options {
		choices[i] = fmt.Sprintf("[%d]", o)
	}
	fmt.Fprintf(p.w, "\nQuestion %d/%d\n  %s = ?\n  %s\n> ", p.number, p.total, q.Text(), strings.Join(choices, "  "))
}

func (p *printer) answer(picked, correct int, isCorrect bool) {
	if isCorrect {
		fmt.Fprintln(p.w, "Correct!")
		return
	}
	fmt.Fprintf(p.w, "Wrong, %d is not it. The answer is %d.\n", picked, correct)
}

func (p *printer) time(remaining int) {
	if remaining > 0 && remaining%10 != 0 && remaining > 5 {
		return
	}
	if remaining == 0 {
		fmt.Fprintln(p.w, "\nTime's up!")
		return
	}
	fmt.Fprintf(p.w, "\n(%ds left)\n", remaining)
}

func (p *printer) invalid(input string) {
	fmt.Fprintf(p.w, "%q is not a number, type one of the choices.\n> ", input)
}

func (p *printer) summary(s session.Stats) {
	fmt.Fprintf(p.w, "\n%s\n", strings.Repeat("─", 32))
	fmt.Fprintf(p.w, "Score:        %d/%d (%.0f%%)\n", s.Score, s.NumQuestions, s.ScorePercentage)
	fmt.Fprintf(p.w, "Answered:     %d\n", s.Answered)
	fmt.Fprintf(p.w, "Time used:    %ds\n", s.ElapsedSeconds)
	fmt.Fprintf(p.w, "Avg/question: %.1fs\n", s.AverageSecondsPerQuestion)
	fmt.Fprintf(p.w, "Difficulty:   %s\n", s.Difficulty.Label())
	fmt.Fprintf(p.w, "%s\n", s.Rating.Message())
}
