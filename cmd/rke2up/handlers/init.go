package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hkn/rke2up/internal/config/wizard"
	"github.com/hkn/rke2up/internal/ui"
)

// runWizard is replaced in tests.
var runWizard = wizard.Run

// Init runs the interactive inventory wizard and writes the result.
func Init(ctx context.Context, outputPath string, force bool) error {
	result, err := runWizard(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			ui.Dim("Aborted.")
			return nil
		}
		return fmt.Errorf("wizard failed: %w", err)
	}

	if err := result.WriteFile(outputPath, force); err != nil {
		return err
	}

	ui.Success("inventory written to %s", outputPath)
	ui.Dim("Next: rke2up up -c %s", outputPath)
	return nil
}
