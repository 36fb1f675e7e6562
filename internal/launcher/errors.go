package launcher

import (
	"errors"
	"fmt"
)

var (
	ErrConfigInvalid    = errors.New("invalid launch configuration")
	ErrIdentityMismatch = errors.New("private key does not control the configured account address")

	ErrLoginFailed   = errors.New("login failed")
	ErrUploadFailed  = errors.New("image upload failed")
	ErrPrepareFailed = errors.New("create prepare failed")
	ErrSubmitFailed  = errors.New("create transaction failed")
	ErrExtractFailed = errors.New("token create event extraction failed")
	ErrApproveFailed = errors.New("approve failed")
)

type Stage string

const (
	StageConfig  Stage = "config"
	StageLogin   Stage = "login"
	StageUpload  Stage = "upload"
	StagePrepare Stage = "prepare"
	StageSubmit  Stage = "submit"
	StageExtract Stage = "extract"
	StageApprove Stage = "approve"
)

var stageErrors = map[Stage]error{
	StageConfig:  ErrConfigInvalid,
	StageLogin:   ErrLoginFailed,
	StageUpload:  ErrUploadFailed,
	StagePrepare: ErrPrepareFailed,
	StageSubmit:  ErrSubmitFailed,
	StageExtract: ErrExtractFailed,
	StageApprove: ErrApproveFailed,
}

// StageError is the failure of one pipeline stage. Both the stage sentinel and the cause match errors.Is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: errors.Join(stageErrors[stage], err)}
}

// StageOf returns the stage an error originated in, or "" if it is not a stage failure.
func StageOf(err error) Stage {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}

	return ""
}
