package domain

import "errors"

var (
	ErrPipelineDoesNotExist = errors.New("stevedore.yaml does not exist")
	ErrNoRef                = errors.New("no git ref found, not a git repository and no CI environment present")
	ErrTargetNotFound       = errors.New("target not found in pipeline")
	ErrRunNotFound          = errors.New("run not found")
	ErrDockerNotFound       = errors.New("docker binary not found in PATH")
	ErrNoCredentials        = errors.New("registry host, user and password must be set. Please use `stevedore login` to set them")
)
