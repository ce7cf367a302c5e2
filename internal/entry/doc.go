// Package entry defines the records braglog persists: dated accomplishment
// entries and the calendar dates they are filed under.
//
// A LogEntry is immutable once created. Its ID doubles as the insertion
// marker, so sorting by (LogDate, ID) keeps same-day entries in the order
// they were added.
package entry
