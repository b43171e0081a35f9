package repository

import (
	"fmt"
	"time"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// SQLite hands DATETIME values back as time.Time when the column is declared
// as such and as text for computed expressions.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

type timestamp struct {
	dst *time.Time
}

// ts adapts a time field for Scan. NULL scans as the zero time.
func ts(dst *time.Time) timestamp {
	return timestamp{dst: dst}
}

func (t timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dst = time.Time{}
		return nil
	case time.Time:
		*t.dst = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
}

func (t timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			*t.dst = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("scan timestamp: unrecognized value %q", s)
}

// sqliteTime formats t the way CURRENT_TIMESTAMP stores it.
func sqliteTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
