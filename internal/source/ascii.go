package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
)

// LineError reports a line that could not be turned into an entry.
type LineError struct {
	Pos  dialect.Position
	Line string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ASCIIResult is the outcome of reading a fixed-width table.
type ASCIIResult struct {
	Entries []dialect.Entry
	// Skipped lists lines that produced no entry. Reading continues past them.
	Skipped []*LineError
}

// ReadASCII splits a fixed-width table into raw entries. Blank lines and
// lines starting with '#' are ignored. Excited states are attached to the
// ground state entry they follow. Only I/O failures are returned as error.
func ReadASCII(r io.Reader, name string, layout Layout) (*ASCIIResult, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	res := &ASCIIResult{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos := dialect.Position{Source: name, Line: lineNo}
		skip := func(err error) {
			res.Skipped = append(res.Skipped, &LineError{Pos: pos, Line: line, Err: err})
		}

		a := strings.TrimSpace(layout.A.Cut(line))
		zzzi, err := strconv.Atoi(strings.TrimSpace(layout.ZZZi.Cut(line)))
		if err != nil || zzzi < 0 {
			skip(fmt.Errorf("invalid ZZZi column %q", layout.ZZZi.Cut(line)))
			continue
		}
		z := strconv.Itoa(zzzi / 10)
		state := zzzi % 10

		e := dialect.Entry{
			Pos: pos,
			Z:   z,
			A:   a,
			Fields: map[string]string{
				dialect.FieldMassDefect: layout.MassDefect.Cut(line),
				dialect.FieldEnergy:     layout.Energy.Cut(line),
				dialect.FieldHalfLife:   layout.HalfLife.Cut(line),
				dialect.FieldSpin:       layout.Spin.Cut(line),
				dialect.FieldDecayModes: layout.DecayModes.Cut(line),
			},
			Comment: strings.TrimSpace(layout.Comment.Cut(line)),
		}

		if state == 0 {
			res.Entries = append(res.Entries, e)
			continue
		}

		last := len(res.Entries) - 1
		if last < 0 || res.Entries[last].Z != z || res.Entries[last].A != a {
			skip(fmt.Errorf("excited state %d of Z=%s A=%s does not follow its ground state", state, z, a))
			continue
		}
		res.Entries[last].Isomers = append(res.Entries[last].Isomers, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return res, nil
}
