package domain

// PushEvent is the subset of the GitHub push webhook payload the daemon acts
// on. Everything else in the event is ignored.
type PushEvent struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	Deleted    bool   `json:"deleted"`
	Repository struct {
		FullName string `json:"full_name"`
		CloneURL string `json:"clone_url"`
	} `json:"repository"`
} // @name PushEvent
