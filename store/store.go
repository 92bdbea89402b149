// Package store persists the ledger to a line-oriented CSV text file and
// loads it back. Save and load are inverse operations: a load of a saved
// file reproduces the same transactions in the same order and the same
// budgets, ids included.
//
// The file layout is one record per line, comma separated, UTF-8:
//
//	id,date,type,category,amount,note
//	01J3...,2024-03-05,EXPENSE,FOOD,45.50,lunch
//	#BUDGET,FOOD,100
//
// The first line is a header. Budget records are recognized by the
// literal #BUDGET leading field; every other non-header record is parsed
// positionally as a transaction. Notes follow standard CSV quoting
// (doubled-quote escape), so they may contain commas, quotes and
// newlines.
//
// Every save truncates and rewrites the whole file. This is a deliberate
// simplicity/durability trade-off for a low-volume personal tool; the
// rewrite is not crash-atomic.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robinvdvleuten/spendwise/ledger"
	"github.com/robinvdvleuten/spendwise/telemetry"
)

// header is written as the first line on save and skipped on load.
var header = []string{"id", "date", "type", "category", "amount", "note"}

// budgetTag is the leading field of budget records.
const budgetTag = "#BUDGET"

// Store owns one ledger file. It implements ledger.Persister so a loaded
// ledger writes every mutation back through the store it came from.
type Store struct {
	path string
}

// New creates a store bound to a file path. The file need not exist yet;
// it is created by the first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Open loads the ledger at path and attaches the store as its persister.
// A missing file yields an empty ledger and no error. A read or parse
// failure also yields an empty, usable ledger, with the failure returned
// as a *ReadError diagnostic so the caller can warn and proceed.
func Open(ctx context.Context, path string) (*ledger.Ledger, error) {
	s := New(path)
	l, err := s.Load(ctx)
	l.SetPersister(s)
	return l, err
}

// Load reads the ledger file. The returned ledger is never nil; see Open
// for the degraded-load contract.
func (s *Store) Load(ctx context.Context) (*ledger.Ledger, error) {
	timer := telemetry.FromContext(ctx).Start("store.load")
	defer timer.End()

	l := ledger.New()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return l, NewReadError(s.path, 0, err)
	}
	defer func() { _ = f.Close() }()

	transactions, budgets, err := readRecords(f)
	if err != nil {
		return ledger.New(), err
	}

	l.Restore(transactions, budgets)
	return l, nil
}

// Save truncates and rewrites the whole file: header first, then every
// transaction in ledger insertion order, then every budget in mapping
// (insertion) order. The file handle is closed on all exit paths,
// including error paths.
func (s *Store) Save(ctx context.Context, l *ledger.Ledger) error {
	timer := telemetry.FromContext(ctx).Start("store.save")
	defer timer.End()

	f, err := os.Create(s.path)
	if err != nil {
		return NewWriteError(s.path, err)
	}

	err = writeRecords(f, l)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewWriteError(s.path, err)
	}
	return nil
}

// readRecords parses the file into transactions and ordered budgets.
func readRecords(f *os.File) ([]ledger.Transaction, []ledger.Budget, error) {
	r := csv.NewReader(f)
	// Budget records have three fields, transactions six; blank lines are
	// skipped by the reader itself.
	r.FieldsPerRecord = -1

	var (
		transactions []ledger.Transaction
		budgets      []ledger.Budget
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, nil, NewReadError(f.Name(), line, err)
		}
		if len(record) == 0 {
			continue
		}

		switch {
		case record[0] == budgetTag:
			b, err := parseBudget(record)
			if err != nil {
				return nil, nil, NewReadError(f.Name(), lineOf(r), err)
			}
			budgets = append(budgets, b)

		case record[0] == header[0]:
			// Header line, recognized and skipped.

		default:
			txn, err := parseTransaction(record)
			if err != nil {
				return nil, nil, NewReadError(f.Name(), lineOf(r), err)
			}
			transactions = append(transactions, txn)
		}
	}

	return transactions, budgets, nil
}

// writeRecords serializes the full ledger state to w.
func writeRecords(w io.Writer, l *ledger.Ledger) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, txn := range l.Transactions() {
		record := []string{
			txn.ID,
			txn.Date.String(),
			txn.Kind.String(),
			txn.Category.String(),
			txn.Amount.String(),
			txn.Note,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	for _, b := range l.Budgets() {
		record := []string{budgetTag, b.Category.String(), b.Limit.String()}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// parseBudget parses a #BUDGET,category,limit record.
func parseBudget(record []string) (ledger.Budget, error) {
	if len(record) < 3 {
		return ledger.Budget{}, fmt.Errorf("budget record has %d fields, want 3", len(record))
	}

	category, err := ledger.ParseCategory(record[1])
	if err != nil {
		return ledger.Budget{}, err
	}

	limit, err := ledger.ParseAmount(record[2])
	if err != nil {
		return ledger.Budget{}, err
	}

	return ledger.Budget{Category: category, Limit: limit}, nil
}

// parseTransaction parses a positional id,date,type,category,amount,note
// record. The note field may be absent.
func parseTransaction(record []string) (ledger.Transaction, error) {
	if len(record) < 5 {
		return ledger.Transaction{}, fmt.Errorf("transaction record has %d fields, want at least 5", len(record))
	}

	date, err := ledger.NewDate(record[1])
	if err != nil {
		return ledger.Transaction{}, err
	}

	kind, err := ledger.ParseKind(record[2])
	if err != nil {
		return ledger.Transaction{}, err
	}

	category, err := ledger.ParseCategory(record[3])
	if err != nil {
		return ledger.Transaction{}, err
	}

	amount, err := ledger.ParseAmount(record[4])
	if err != nil {
		return ledger.Transaction{}, err
	}

	note := ""
	if len(record) > 5 {
		note = record[5]
	}

	return ledger.Transaction{
		ID:       record[0],
		Date:     date,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Note:     note,
	}, nil
}

// lineOf reports the line of the most recently read record.
func lineOf(r *csv.Reader) int {
	line, _ := r.FieldPos(0)
	return line
}
