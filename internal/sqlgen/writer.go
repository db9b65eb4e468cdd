//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sqlgen renders batched SQL INSERT statements.
package sqlgen

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BatchConfig configures batched statement output.
type BatchConfig struct {
	// BatchSize is the number of value tuples per INSERT statement.
	BatchSize int

	// MarkerInterval is how often (in rows) a progress comment is
	// written into the SQL stream. Zero disables markers.
	MarkerInterval int64
}

// DefaultBatchConfig returns default batch output configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		BatchSize:      500,
		MarkerInterval: 5000,
	}
}

// printer renders comma-grouped record counts in comments.
var printer = message.NewPrinter(language.English)

// InsertWriter accumulates formatted value tuples and writes them out as
// batched INSERT statements, each terminated with the configured conflict
// clause. Tuples are flushed when the batch fills; Flush writes any
// remainder.
type InsertWriter struct {
	w        io.Writer
	table    string
	columns  string
	conflict string
	cfg      BatchConfig
	batch    []string
	total    int64
}

// NewInsertWriter creates an InsertWriter for the given table. columns is
// the parenthesized column list, conflict the statement terminator (e.g.
// "ON CONFLICT (...) DO NOTHING;").
func NewInsertWriter(w io.Writer, table, columns, conflict string, cfg BatchConfig) *InsertWriter {
	return &InsertWriter{
		w:        w,
		table:    table,
		columns:  columns,
		conflict: conflict,
		cfg:      cfg,
		batch:    make([]string, 0, cfg.BatchSize),
	}
}

// Add appends one value tuple, flushing a full batch.
func (iw *InsertWriter) Add(tuple string) error {
	iw.batch = append(iw.batch, tuple)
	iw.total++

	if len(iw.batch) >= iw.cfg.BatchSize {
		if err := iw.writeBatch(); err != nil {
			return err
		}
		if iw.cfg.MarkerInterval > 0 && iw.total%iw.cfg.MarkerInterval == 0 {
			if err := iw.writeMarker(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes any remaining tuples.
func (iw *InsertWriter) Flush() error {
	if len(iw.batch) == 0 {
		return nil
	}
	return iw.writeBatch()
}

// Total returns the number of tuples added so far.
func (iw *InsertWriter) Total() int64 {
	return iw.total
}

func (iw *InsertWriter) writeBatch() error {
	_, err := fmt.Fprintf(iw.w, "INSERT INTO %s %s VALUES\n%s\n%s\n\n",
		iw.table, iw.columns, strings.Join(iw.batch, ",\n"), iw.conflict)
	iw.batch = iw.batch[:0]
	return err
}

func (iw *InsertWriter) writeMarker() error {
	_, err := printer.Fprintf(iw.w, "-- Progress: %d records...\n", iw.total)
	return err
}

// WriteHeader writes the banner comment block that opens the SQL stream.
func WriteHeader(w io.Writer, title string, totalRecords int64, generatedAt time.Time) error {
	_, err := fmt.Fprintf(w,
		"-- ============================================\n"+
			"-- %s\n"+
			"-- ============================================\n"+
			"-- Generated: %s\n"+
			"-- Total records: %d\n"+
			"-- ============================================\n\n",
		title, generatedAt.Format(time.RFC3339), totalRecords)
	return err
}

// WriteFooter writes the closing comment with the final record count.
func WriteFooter(w io.Writer, totalRecords int64) error {
	_, err := printer.Fprintf(w, "\n-- Complete: %d total records\n", totalRecords)
	return err
}

// Escape doubles single quotes so a string can be embedded in a SQL
// string literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
