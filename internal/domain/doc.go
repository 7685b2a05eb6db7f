// Package domain models access-control / attendance log exports and their
// hourly summary.
//
// # Data Source
//
// Exports are produced by the access-control terminal software and dropped by
// an operator into the input folder. They are semicolon-delimited text encoded
// as Latin-1 (ISO-8859-1), first line is the header:
//
//	USUARIO;NOME USUARIO;DATA;ESTAÇÃO;EVENTO
//	7;Maria Souza;12/03/2024 08:15:00;3;ACESSO LIBERADO
//
// Extra columns (EVENTO above) are ignored.
//
// # Header Conventions
//
// Headers carry Portuguese accents, and the terminal software is not
// consistent about them. Every header is ASCII-folded before lookup: NFKD
// decomposition followed by dropping everything outside 7-bit ASCII, so
// "ESTAÇÃO" is looked up as "ESTACAO". Folding is idempotent. A header that
// folds to nothing is kept as an empty column name. See [NormalizeHeaders].
//
// Required columns after folding:
//
//	NOME USUARIO  display name, may be blank
//	USUARIO       user identifier
//	DATA          event timestamp
//	ESTACAO       station (terminal) identifier
//
// # Identity
//
// Rows are grouped by the (station, user id, user name) triple. A blank or
// null-marker name ("NA", "NULL", "NaN", ...) falls back to the user id before
// grouping. In a column whose values are all numeric-looking, values are
// written in plain decimal form, so "7", "7.0" and "7e0" are the same
// identity. A column mixing text and numbers keeps every value as written
// (trimmed), so "0123" stays "0123".
//
// # Hour Buckets
//
// Timestamps are parsed day-first ("12/03/2024", "12-03-2024", "12.03.2024",
// with or without seconds), then as a bare time of day, then leniently (ISO
// and many other layouts). Bare digit strings are never read as Unix epochs. Each parsed timestamp counts once in the bucket of its
// hour of day, labelled "HH:00-HH:59". Unparseable timestamps never count,
// but their rows still define an identity.
//
// # Output Conventions
//
// A zero count is written as a blank cell. Blank and zero mean the same thing
// to any consumer: see [Count]. Station and user id columns are written as
// numbers only when every value in the column is numeric. See [ClassifyColumn].
package domain
