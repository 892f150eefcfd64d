package xlwrite

import "sync"

// Progress messages published while a workbook is written.
const (
	StatusGenerating = "generating script"
	StatusRunning    = "running spreadsheet engine"
	StatusCleaningUp = "removing script file"
)

// Status is a single human-readable progress message shared between the
// writer goroutine and any observer. The last Set wins.
type Status struct {
	mu  sync.Mutex
	msg string
}

// NewStatus returns an empty Status.
func NewStatus() *Status {
	return &Status{}
}

func (s *Status) Set(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

func (s *Status) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}
