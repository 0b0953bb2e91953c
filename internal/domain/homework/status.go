// internal/domain/homework/status.go
package homework

// Status is the review verdict reported by the status API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to the text sent to the student.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the notification text for a status.
func Verdict(s Status) (string, bool) {
	text, ok := verdicts[s]
	return text, ok
}

// Record is a single homework entry of the status API response.
type Record struct {
	Name   string
	Status Status
}

// State is everything the polling loop remembers between iterations.
type State struct {
	Cursor      int64  // Unix timestamp passed as from_date
	LastMessage string // Last text delivered to the chat, for de-duplication
}
