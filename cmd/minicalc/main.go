package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/vjeantet/jodaTime"

	"github.com/zephyrtronium/minicalc"
)

// input is a source of expression text or key presses.
type input interface {
	io.Reader
	io.RuneScanner
}

func main() {
	log.SetFlags(0)
	var (
		inname string
		nl, keys bool
	)
	out := printer{w: os.Stdout}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&out.verb, "fmt", "", "result formatting verb (default shortest exact decimal)")
	flag.StringVar(&out.stamp, "stamp", "", "prefix output lines with the time in this Joda layout, e.g. HH:mm:ss")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&out.echo, "echo", false, "print parse trees")
	flag.BoolVar(&keys, "keys", false, "treat input as calculator key presses")
	flag.BoolVar(&out.quiet, "quiet", false, "do not report malformed expressions or evaluation errors")
	flag.Parse()

	var ins []input
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	if keys {
		if err := press(ins, &out); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, in := range ins {
		if nl {
			err = lines(in, &out)
		} else {
			err = whole(in, &out)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

// whole evaluates all of in as a single expression. Blank input prints
// nothing.
func whole(in input, out *printer) error {
	if done, err := blank(in); err != nil {
		return errors.Wrap(err, "reading expression")
	} else if done {
		return nil
	}
	a, err := minicalc.Parse(in)
	if err != nil {
		if errors.Is(err, minicalc.ErrMalformed) {
			out.fail(err)
			return nil
		}
		return err
	}
	out.eval(a)
	return nil
}

// lines evaluates each non-blank line of in as its own expression. A line
// which fails to parse is reported like an evaluation error and does not
// affect the lines after it.
func lines(in io.Reader, out *printer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		a, err := minicalc.ParseString(src)
		if err != nil {
			out.fail(err)
			continue
		}
		out.eval(a)
	}
	return errors.Wrap(sc.Err(), "reading lines")
}

// press feeds runes from each input to a single calculator buffer as key
// presses. The buffer is printed after each evaluation and at the end.
func press(ins []input, out *printer) error {
	var buf minicalc.Buffer
	dirty := false
	for _, in := range ins {
		for {
			r, _, err := in.ReadRune()
			if err != nil {
				if err == io.EOF {
					break
				}
				return errors.Wrap(err, "reading keys")
			}
			k, ok := minicalc.KeyFor(r)
			if !ok {
				if unicode.IsSpace(r) {
					continue
				}
				return errors.Errorf("no key for %q", r)
			}
			switch k.Action {
			case minicalc.Insert:
				buf.Append(k.Token)
				dirty = true
				continue
			case minicalc.Delete:
				buf.DeleteLast()
				dirty = true
				continue
			case minicalc.Clear:
				buf.Clear()
				dirty = true
				continue
			}
			if !dirty {
				// Repeated = or a blank line.
				continue
			}
			dirty = false
			if _, err := buf.Evaluate(); err != nil {
				if !out.quiet {
					out.line(buf.Current() + ": " + err.Error())
				}
				continue
			}
			out.line(buf.Current())
		}
	}
	if dirty {
		out.line(buf.Current())
	}
	return nil
}

// blank skips leading whitespace in in and reports whether nothing else
// remains.
func blank(in io.RuneScanner) (bool, error) {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return true, nil
			}
			return false, err
		}
		if !unicode.IsSpace(r) {
			return false, in.UnreadRune()
		}
	}
}

type printer struct {
	w     io.Writer
	stamp string
	verb  string
	echo  bool
	quiet bool
}

// eval evaluates a and prints the result or the error.
func (p *printer) eval(a *minicalc.Expr) {
	var s string
	r, err := a.Eval()
	switch {
	case err == nil:
		s = p.format(r)
	case p.quiet && !p.echo:
		return
	case p.quiet:
		// Echo the tree with nothing after it.
	default:
		s = err.Error()
	}
	if p.echo {
		s = a.String() + " : " + s
	}
	p.line(s)
}

// fail reports an expression that could not be parsed.
func (p *printer) fail(err error) {
	if !p.quiet {
		p.line(err.Error())
	}
}

func (p *printer) line(s string) {
	if p.stamp != "" {
		fmt.Fprint(p.w, jodaTime.Format(p.stamp, time.Now()), " ")
	}
	fmt.Fprintln(p.w, s)
}

func (p *printer) format(r float64) string {
	if p.verb == "" {
		return minicalc.Format(r)
	}
	return fmt.Sprintf(p.verb, r)
}

func infile(inname string, std bool) (input, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
