// Package filex provides file existence checks and input reading.
//
// Read failures are returned as *tkerror.Error values: NOT_FOUND when the
// file does not exist and INTERNAL otherwise. ReadInput treats "-" as
// standard input, the convention of the textkit command line tool.
package filex
