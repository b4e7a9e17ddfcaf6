// Package recording persists per-access records into a SQLite database so a
// simulated trace can be queried offline.
package recording

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/structs"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/atexit"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// accessTable is the single table the recorder writes.
const accessTable = "accesses"

// AccessEntry is one row of the accesses table. Field names become column
// names.
type AccessEntry struct {
	Seq        int // 1-based position in the trace
	Kind       string
	Address    uint32
	Tag        uint32
	SetIndex   uint32
	ByteOffset uint32
	Hit        bool
	MemRefs    int
}

// Recorder buffers access entries and writes them to SQLite in batches.
type Recorder struct {
	db        *sql.DB
	path      string
	entries   []AccessEntry
	batchSize int
}

// NewRecorder opens (and creates) the database at path and creates the
// accesses table. An empty path generates a fresh database name. The
// recorder registers an atexit flush so buffered rows survive an early exit.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		path = "cachesim_" + xid.New().String()
	}
	filename := path
	if !strings.HasSuffix(filename, ".sqlite3") {
		filename += ".sqlite3"
	}

	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", filename, err)
	}

	r := &Recorder{
		db:        db,
		path:      filename,
		batchSize: 10000,
	}
	if err := r.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	logrus.Infof("Database created for recording: %s", filename)
	atexit.Register(func() { r.Flush() })

	return r, nil
}

// Path returns the database filename.
func (r *Recorder) Path() string {
	return r.path
}

func (r *Recorder) createTable() error {
	fields := strings.Join(structs.Names(AccessEntry{}), ", \n\t")
	createTableSQL := `CREATE TABLE ` + accessTable +
		` (` + "\n\t" + fields + "\n" + `);`
	if _, err := r.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("cannot create table %s: %w", accessTable, err)
	}
	return nil
}

// InsertAccess buffers one row, flushing when the batch is full.
func (r *Recorder) InsertAccess(entry AccessEntry) error {
	r.entries = append(r.entries, entry)
	if len(r.entries) >= r.batchSize {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered rows inside one transaction.
func (r *Recorder) Flush() error {
	if len(r.entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}

	placeholders := make([]string, len(structs.Names(AccessEntry{})))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmt, err := tx.Prepare(
		"INSERT INTO " + accessTable + " VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cannot prepare insert: %w", err)
	}

	for _, entry := range r.entries {
		if _, err := stmt.Exec(structs.Values(entry)...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("cannot insert access row: %w", err)
		}
	}
	stmt.Close()

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cannot commit accesses: %w", err)
	}
	r.entries = nil
	return nil
}

// Close flushes any buffered rows and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}
