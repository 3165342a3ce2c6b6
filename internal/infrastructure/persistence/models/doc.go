// Package models contains the Go shapes of the CRM database relations.
//
// Every table has three shapes:
//   - a Row type (e.g. Client) read back from the database, where nullable
//     columns are pointers;
//   - an Insert type (e.g. ClientInsert) where required columns are plain
//     fields and columns that are nullable or have a default are Opt;
//   - an Update type (e.g. ClientUpdate) where every column is Opt.
//
// Views only have a Row type. An unset Opt is left out of the statement, so
// InsertValues and UpdateValues return exactly the columns the caller
// provided.
package models
