// Package scoreboard records finished-round scores and answers the
// highest-score query.
package scoreboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Label precedes the score on every record line.
const Label = "Score: "

// ErrMalformedRecord marks a record line whose payload is not an integer.
var ErrMalformedRecord = errors.New("scoreboard: malformed score record")

// Record is one stored score.
type Record struct {
	Score int
	// CreatedAt is zero for backends that do not keep timestamps.
	CreatedAt time.Time
}

// Board is a score store. Implementations must tolerate concurrent use.
type Board interface {
	// SaveScore appends one finished-round score.
	SaveScore(score int) error
	// HighestScore returns the best recorded score, or 0 when there is none.
	HighestScore() (int, error)
	// Records returns up to limit records, best first.
	Records(limit int) ([]Record, error)
	// Count returns the number of recorded rounds.
	Count() (int, error)
}

// MalformedError lists the record lines that were skipped.
type MalformedError struct {
	Path  string
	Lines []int // 1-based line numbers
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("scoreboard: %s: %d malformed record(s) at line(s) %v", e.Path, len(e.Lines), e.Lines)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedRecord
}

// Log is an append-only plain text score log, one "Score: <n>" line per record.
// Queries rescan the whole file every time.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog returns a log backed by the file at path. The file is created on
// the first save. A leading ~ is expanded to the home directory.
func NewLog(path string) (*Log, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &Log{path: expanded}, nil
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// SaveScore appends one record. Existing content is never rewritten.
func (l *Log) SaveScore(score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scoreboard: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scoreboard: cannot open %s: %w", l.path, err)
	}

	if _, err := fmt.Fprintf(f, "%s%d\n", Label, score); err != nil {
		f.Close()
		return fmt.Errorf("scoreboard: cannot append to %s: %w", l.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("scoreboard: cannot close %s: %w", l.path, err)
	}
	return nil
}

// HighestScore scans every line and returns the largest score, or 0 when the
// log is missing or empty. Lines without the label are ignored. Labelled
// lines with a bad payload are skipped and reported with a *MalformedError,
// returned together with the maximum over the valid lines.
func (l *Log) HighestScore() (int, error) {
	scores, err := l.scan()
	highest := 0
	for _, s := range scores {
		highest = max(highest, s)
	}
	return highest, err
}

// Records returns up to limit scores from the log, best first.
// A limit of 0 or less returns every record.
func (l *Log) Records(limit int) ([]Record, error) {
	scores, err := l.scan()

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	records := make([]Record, len(scores))
	for i, s := range scores {
		records[i] = Record{Score: s}
	}
	return records, err
}

// Count returns the number of valid records. Malformed lines are not counted
// and are reported the same way as in HighestScore.
func (l *Log) Count() (int, error) {
	scores, err := l.scan()
	return len(scores), err
}

// scan reads every valid score from the log in file order.
func (l *Log) scan() ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scoreboard: cannot open %s: %w", l.path, err)
	}
	defer f.Close()

	var (
		scores    []int
		malformed []int
		lineNo    int
	)
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNo++
			score, ok, valid := ParseLine(line)
			switch {
			case !ok:
			case !valid:
				malformed = append(malformed, lineNo)
			default:
				scores = append(scores, score)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return scores, fmt.Errorf("scoreboard: cannot read %s: %w", l.path, err)
		}
	}

	if len(malformed) > 0 {
		return scores, &MalformedError{Path: l.path, Lines: malformed}
	}
	return scores, nil
}

// ParseLine extracts the score from one log line. ok is false when the line
// has no label. valid is false when the label is followed by something other
// than an integer.
func ParseLine(line string) (score int, ok, valid bool) {
	idx := strings.Index(line, Label)
	if idx < 0 {
		return 0, false, false
	}

	fields := strings.Fields(line[idx+len(Label):])
	if len(fields) == 0 {
		return 0, true, false
	}

	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, true, false
	}
	return score, true, true
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scoreboard: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
