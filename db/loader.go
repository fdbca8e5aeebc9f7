package db

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/andys/csvrec/config"
	"github.com/andys/csvrec/record"
)

// LoaderProgress tracks the progress of loading operations
type LoaderProgress struct {
	ProcessedRows atomic.Int64
	ErrorCount    atomic.Int64
	StartTime     time.Time
}

// Loader writes records to a destination table using a worker pool
type Loader struct {
	conn     *Connection
	table    string
	names    []string
	pool     pond.Pool
	progress *LoaderProgress
	cfg      *config.Config
}

// NewLoader creates a new loader worker pool inserting into table with
// the given column order.
func NewLoader(conn *Connection, table string, names []string, maxWorkers int, cfg *config.Config) *Loader {
	return &Loader{
		conn:  conn,
		table: table,
		names: names,
		pool:  pond.NewPool(maxWorkers, pond.WithQueueSize(maxWorkers*2000)),
		progress: &LoaderProgress{
			StartTime: time.Now(),
		},
		cfg: cfg,
	}
}

// Submit submits a record for insertion into the destination table
func (l *Loader) Submit(rec record.Record) {
	l.pool.SubmitErr(func() error {
		err := l.insertRecord(rec)
		if err == nil {
			l.progress.ProcessedRows.Add(1)
		}
		return err
	})
}

// insertRecord handles the insert operation for a single record
func (l *Loader) insertRecord(rec record.Record) error {
	err := l.conn.InsertRecord(l.table, l.names, rec)
	if err != nil {
		l.progress.ErrorCount.Add(1)
		if l.cfg != nil && l.cfg.Debug {
			fmt.Fprintf(os.Stderr, "Error writing to table %s: %v\n", l.table, err)
		}
	}
	return err
}

// Progress returns the loader's progress counters
func (l *Loader) Progress() *LoaderProgress {
	return l.progress
}

// StopAndWait stops the worker pool and waits for all tasks to complete
func (l *Loader) StopAndWait() {
	l.pool.StopAndWait()
}
