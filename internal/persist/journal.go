package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxJournalLine caps a sanitized journal line, in runes.
const MaxJournalLine = 255

// Sanitize prepares free text for the journal: NFC-normalized, control
// characters removed, surrounding space trimmed and length capped.
func Sanitize(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > MaxJournalLine {
		s = strings.TrimSpace(string(r[:MaxJournalLine]))
	}
	return s
}

// AppendJournal writes each line to the journal. Lines that sanitize to
// nothing are skipped.
func (s *Store) AppendJournal(lines ...string) error {
	var b strings.Builder
	for _, l := range lines {
		l = Sanitize(l)
		if l == "" {
			continue
		}
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return nil
	}
	return s.appendFile(JournalFile, []byte(b.String()))
}

// ReadJournal returns every journal entry in order. A missing journal is
// not an error; it returns no entries.
func (s *Store) ReadJournal() ([]string, error) {
	f, err := os.Open(s.Path(JournalFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read journal: %w", err)
	}
	return out, nil
}
