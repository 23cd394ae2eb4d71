package recorder

// CycleRecord is the operational audit row for one daily cycle: what
// was processed and what went out, not bet results.
type CycleRecord struct {
	Sport       string
	Events      int
	VIPEvents   int
	Picks       int
	Accumulated bool    // an accumulator satisfied the band
	Product     float64 // combined odd when Accumulated
	Delivered   bool    // the report reached the chat
	Trigger     string  // "CRON", "COMMAND", "FORCED"
}

// Recorder persists cycle audit rows.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	Close() error
}
