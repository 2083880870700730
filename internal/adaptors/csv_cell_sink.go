package adaptors

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"login_checker/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// CSVCellSink keeps the latest outcome in a single cell of a CSV sheet,
// addressed spreadsheet style ("B2").
type CSVCellSink struct {
	path string
	row  int
	col  int
	cell string
	mu   sync.Mutex
	log  *log.Logger
}

func NewCSVCellSink(path, cell string, log *log.Logger) (*CSVCellSink, error) {
	if path == "" {
		return nil, errors.New(`csv sink path is empty`)
	}
	row, col, err := parseCellRef(cell)
	if err != nil {
		return nil, errors.Wrap(err, `invalid csv sink cell`)
	}
	return &CSVCellSink{
		path: path,
		row:  row,
		col:  col,
		cell: strings.ToUpper(cell),
		log:  log,
	}, nil
}

func (s *CSVCellSink) Write(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readSheet()
	if err != nil {
		return err
	}

	for len(rows) <= s.row {
		rows = append(rows, nil)
	}
	for len(rows[s.row]) <= s.col {
		rows[s.row] = append(rows[s.row], "")
	}
	rows[s.row][s.col] = value

	// pad to a rectangle so the csv writer emits consistent records. A one
	// column sheet would encode empty rows as blank lines, which readers skip.
	width := 2
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], "")
		}
	}

	if err := s.writeSheet(rows); err != nil {
		return err
	}

	s.log.WithFields(log.Fields{
		`sink`: `csv`,
		`path`: s.path,
		`cell`: s.cell,
	}).Debug(`outcome written`)
	return nil
}

func (s *CSVCellSink) Close() error {
	return nil
}

func (s *CSVCellSink) readSheet() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, `failed to open sheet`)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, `failed to read sheet`)
	}
	return rows, nil
}

// writeSheet replaces the sheet through a temp file so readers never see a
// half written file.
func (s *CSVCellSink) writeSheet(rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), `.sheet-*.csv`)
	if err != nil {
		return errors.Wrap(err, `failed to create temp sheet`)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return errors.Wrap(err, `failed to write sheet`)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, `failed to close temp sheet`)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, `failed to replace sheet`)
	}
	return nil
}

// Sheet bounds, same as common spreadsheet limits (XFD1048576).
const (
	maxCellColumns = 16384
	maxCellRows    = 1048576
	maxColLetters  = 3
)

// parseCellRef turns an A1 reference into zero based row and column indexes.
func parseCellRef(ref string) (int, int, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	i := 0
	col := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		if i == maxColLetters {
			return 0, 0, errors.Errorf(`cell reference %q has too many column letters`, ref)
		}
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, errors.Errorf(`cell reference %q must be letters followed by a row number`, ref)
	}
	if col > maxCellColumns {
		return 0, 0, errors.Errorf(`cell reference %q is beyond column XFD`, ref)
	}
	digits := ref[i:]
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return 0, 0, errors.Errorf(`cell reference %q has an invalid row`, ref)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > maxCellRows {
		return 0, 0, errors.Errorf(`cell reference %q has an invalid row`, ref)
	}
	return row - 1, col - 1, nil
}
