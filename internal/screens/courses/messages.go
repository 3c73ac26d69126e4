package courses

import (
	"github.com/dafoma/lingualearn/internal/catalog"
)

// coursesFetchedMsg is sent when a simulated catalog refresh returns.
// Responses carry the generation they were requested under so a refresh
// started before the latest one is dropped instead of clobbering it.
type coursesFetchedMsg struct {
	gen     int
	courses []catalog.Course
	err     error
}
