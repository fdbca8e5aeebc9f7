package db

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/frankban/quicktest"

	"github.com/andys/csvrec/config"
	"github.com/andys/csvrec/record"
)

func TestLoader_SubmitAndProgress(t *testing.T) {
	c := quicktest.New(t)
	dbMock, mock, err := sqlmock.New()
	c.Assert(err, quicktest.IsNil)
	defer dbMock.Close()

	conn := &Connection{db: dbMock, Type: MySQL, cfg: &config.Config{}}
	mock.ExpectExec("INSERT INTO `people`").WithArgs("Hurtig").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `people`").WithArgs("Svensson").
		WillReturnResult(sqlmock.NewResult(2, 1))

	loader := NewLoader(conn, "people", []string{"name"}, 1, &config.Config{})
	loader.Submit(record.Record{"name": "Hurtig"})
	loader.Submit(record.Record{"name": "Svensson"})
	loader.StopAndWait()

	c.Assert(loader.Progress().ProcessedRows.Load(), quicktest.Equals, int64(2))
	c.Assert(loader.Progress().ErrorCount.Load(), quicktest.Equals, int64(0))
	c.Assert(mock.ExpectationsWereMet(), quicktest.IsNil)
}

func TestLoader_CountsErrors(t *testing.T) {
	c := quicktest.New(t)
	dbMock, mock, err := sqlmock.New()
	c.Assert(err, quicktest.IsNil)
	defer dbMock.Close()

	conn := &Connection{db: dbMock, Type: MySQL, cfg: &config.Config{}}
	mock.ExpectExec("INSERT INTO `people`").WithArgs("Hurtig").
		WillReturnError(fmt.Errorf("insert fail"))

	loader := NewLoader(conn, "people", []string{"name"}, 1, &config.Config{})
	loader.Submit(record.Record{"name": "Hurtig"})
	loader.StopAndWait()

	c.Assert(loader.Progress().ProcessedRows.Load(), quicktest.Equals, int64(0))
	c.Assert(loader.Progress().ErrorCount.Load(), quicktest.Equals, int64(1))
}
