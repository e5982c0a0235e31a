package exec

import "os/exec"

// ToolChecker checks for tool availability in PATH.
type ToolChecker interface {
	// IsAvailable checks if a tool is available in PATH.
	IsAvailable(tool string) bool
}

// toolChecker implements ToolChecker.
type toolChecker struct{}

// NewToolChecker creates a new ToolChecker.
func NewToolChecker() *toolChecker {
	return &toolChecker{}
}

// IsAvailable checks if a tool is available in PATH.
func (*toolChecker) IsAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}
