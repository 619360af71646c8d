package domain

import "time"

type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

type RunTrigger string

const (
	RunTriggerCli     RunTrigger = "cli"
	RunTriggerManual  RunTrigger = "manual"
	RunTriggerWebhook RunTrigger = "webhook"
	RunTriggerCron    RunTrigger = "cron"
)

// PipelineRun records one pass through the pipeline: the ref it was resolved
// from, the tags derived for it and the images that were pushed.
type PipelineRun struct {
	ID         string     `json:"id"`
	Pipeline   string     `json:"pipeline"`
	Targets    []string   `json:"targets"`
	Ref        GitRef     `json:"ref"`
	Tags       []string   `json:"tags"`
	Images     []string   `json:"images"`
	Status     RunStatus  `json:"status"`
	Trigger    RunTrigger `json:"trigger"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
} // @name PipelineRun

// RunOptions select what a single run does. Dir overrides the pipeline
// directory for runs working on a fetched checkout instead of the cwd.
type RunOptions struct {
	Targets []string
	Trigger RunTrigger
	Dir     string
	Ref     *GitRef
	Push    bool
	DryRun  bool
}

// RunPlan is the dry-run output: everything a run would do, without the
// docker and registry side effects.
type RunPlan struct {
	Ref     GitRef      `json:"ref"`
	Targets []PlanEntry `json:"targets"`
} // @name RunPlan

type PlanEntry struct {
	Target string   `json:"target"`
	Image  string   `json:"image"`
	Tags   []string `json:"tags"`
} // @name PlanEntry
