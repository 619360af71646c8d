package api

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
} // @name ErrorResponse

type RunCreatedResponse struct {
	ID string `json:"id"`
} // @name RunCreatedResponse

type RunLogResponse struct {
	Lines []string `json:"lines"`
} // @name RunLogResponse

type CreateRunRequest struct {
	Targets []string `json:"targets,omitempty"`
	DryRun  bool     `json:"dry_run,omitempty"`
	Push    bool     `json:"push"`
} // @name CreateRunRequest
