package models

// PollOption is one choice; votes target option ids.
type PollOption struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll is a consultation with several options.
type Poll struct {
	ID          int64        `json:"id"`
	Question    string       `json:"question"`
	Description string       `json:"description,omitempty"`
	Options     []PollOption `json:"options"`
	EndDate     *Timestamp   `json:"endDate,omitempty"`
	Active      bool         `json:"active"`
}

// TotalVotes sums the votes over all options.
func (p Poll) TotalVotes() int {
	total := 0
	for _, o := range p.Options {
		total += o.Votes
	}
	return total
}

// CreatePollRequest is the JSON body of POST /polls.
type CreatePollRequest struct {
	Question    string     `json:"question" validate:"required"`
	Description string     `json:"description,omitempty"`
	Options     []string   `json:"options" validate:"min=2,dive,required"`
	EndDate     *Timestamp `json:"endDate,omitempty"`
}
