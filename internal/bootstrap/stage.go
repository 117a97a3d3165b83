package bootstrap

import (
	"time"

	"github.com/hkn/rke2up/internal/config"
)

// Stage identifies how far a bootstrap run has progressed. Stages form a
// strict chain: each one starts only after its predecessor produced the
// state it depends on (a ready master, a join token, installed workers).
type Stage int

const (
	StageInit Stage = iota
	StageMastersInstalling
	StageTokenPending
	StageWorkersInstalling
	StageCredentialExtracting
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "Init"
	case StageMastersInstalling:
		return "MastersInstalling"
	case StageTokenPending:
		return "TokenPending"
	case StageWorkersInstalling:
		return "WorkersInstalling"
	case StageCredentialExtracting:
		return "CredentialExtracting"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// StageResult is the per-node outcome of a fan-out stage. Used for failure
// reporting only; never persisted.
type StageResult struct {
	Node     config.Node
	Err      error
	Duration time.Duration
}

// Report accumulates the outcome of a bootstrap run. When Run returns an
// error, Stage names the stage the run failed in; nodes already installed
// stay installed (there is no rollback).
type Report struct {
	Stage          Stage
	MasterResults  []StageResult
	WorkerResults  []StageResult
	Token          Token
	APIEndpoint    string
	KubeconfigPath string
}

// HasFailures reports whether any node-scoped work failed, even if the run
// as a whole completed.
func (r *Report) HasFailures() bool {
	for _, res := range r.MasterResults {
		if res.Err != nil {
			return true
		}
	}
	for _, res := range r.WorkerResults {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// resultFor returns the error recorded for a node, or nil if it succeeded.
func resultFor(results []StageResult, name string) error {
	for _, res := range results {
		if res.Node.Name == name {
			return res.Err
		}
	}
	return nil
}
