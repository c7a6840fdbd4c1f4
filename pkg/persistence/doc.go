// Package persistence provides the flat-file countdown store.
//
// Each countdown lives in its own file, <name>.timer, inside the store
// directory. The file holds the expiry instant as a decimal UNIX timestamp
// in seconds with no trailing newline:
//
//	$ cat tea.timer
//	1792411230
//
// Sub-second precision is dropped on save. Nothing coordinates separate
// processes writing the same directory; the last writer wins.
package persistence
