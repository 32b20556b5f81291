package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// Prompter reads whitespace separated integers from the player and
// writes prompts and messages back.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Prompter{
		scanner: scanner,
		out:     out,
	}
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// ReadInt shows prompt and keeps reading until a token parses as an
// integer accepted by valid. A non-numeric token is reported and skipped
// without repeating the prompt; a rejected number repeats it.
func (p *Prompter) ReadInt(prompt string, valid func(int) bool) (int, error) {
	for {
		p.Println(prompt)

		value, err := p.nextInt(prompt)
		if err != nil {
			return 0, err
		}
		if valid == nil || valid(value) {
			return value, nil
		}
	}
}

func (p *Prompter) nextInt(prompt string) (int, error) {
	for p.scanner.Scan() {
		value, err := strconv.Atoi(p.scanner.Text())
		if err == nil {
			return value, nil
		}
		p.Println(msgIncorrectInput)
	}

	if err := p.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, cerr.ErrInputEnded(prompt)
}
