package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/hkn/rke2up/internal/bootstrap"
	"github.com/hkn/rke2up/internal/ssh"
	"github.com/hkn/rke2up/internal/ui"
)

// errorKind names the failure class of a bootstrap error for the summary.
func errorKind(err error) string {
	var (
		timeoutErr *bootstrap.TimeoutError
		tokenErr   *bootstrap.TokenUnavailableError
		joinErr    *bootstrap.WorkerJoinError
		credErr    *bootstrap.CredentialError
		cmdErr     *ssh.CommandError
	)
	switch {
	case errors.As(err, &timeoutErr):
		return "bootstrap timeout"
	case errors.As(err, &tokenErr):
		return "token unavailable"
	case errors.As(err, &joinErr):
		return "worker join failure"
	case errors.As(err, &credErr):
		return "credential extraction failure"
	case errors.As(err, &cmdErr):
		return "remote execution failure"
	default:
		return "error"
	}
}

// printSummary renders the outcome of a bootstrap run: per-node results,
// the kubeconfig location on success, and failure kinds otherwise. The
// join token never appears here; only its retrieval status does.
func printSummary(report *bootstrap.Report, runErr error) {
	if report == nil {
		return
	}

	fmt.Println()
	ui.Header("Summary")

	for _, res := range report.MasterResults {
		printNodeResult("master", res)
	}
	for _, res := range report.WorkerResults {
		printNodeResult("worker", res)
	}

	if report.Token.Empty() {
		ui.Fail("join token: not retrieved")
	} else {
		ui.Success("join token: retrieved (redacted)")
	}

	if runErr != nil {
		ui.Fail("failed during %s: %s: %v", report.Stage, errorKind(runErr), runErr)
		return
	}

	ui.Success("kubeconfig written to %s (mode 0600)", report.KubeconfigPath)
	ui.Dim("API endpoint: %s", report.APIEndpoint)
	fmt.Println()
	ui.Dim("Try: kubectl --kubeconfig %s get nodes", report.KubeconfigPath)
}

func printNodeResult(role string, res bootstrap.StageResult) {
	if res.Err != nil {
		ui.Fail("%s", nodeResultLine(role, res))
		return
	}
	ui.Success("%s", nodeResultLine(role, res))
}

// nodeResultLine renders one node's outcome, including its address so the
// summary doubles as a worker/master address listing.
func nodeResultLine(role string, res bootstrap.StageResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s %s (%s): %s: %v", role, res.Node.Name, res.Node.Address, errorKind(res.Err), res.Err)
	}
	return fmt.Sprintf("%s %s (%s): ready in %s", role, res.Node.Name, res.Node.Address, res.Duration.Round(time.Millisecond))
}
