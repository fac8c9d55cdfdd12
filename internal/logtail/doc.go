// Package logtail reads the end of roster's log file for the activity overlay.
//
// Read keeps a ring buffer of the last maxLines non-blank lines, so memory is
// bounded no matter how large the file grows. A missing file is not an error;
// it simply means nothing has been logged yet.
//
// Parse and ReadEntries decode the zap JSON lines into Entry values with the
// ts, level and msg keys split out and the remaining fields flattened to
// strings. Entry.Format renders them one per line for display.
package logtail
