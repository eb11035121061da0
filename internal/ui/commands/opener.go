package commands

import (
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Opener hands a URL to an external program
type Opener interface {
	Open(url string) error
}

// ExecOpener runs a command line with the URL appended, e.g. "xdg-open"
type ExecOpener struct {
	command []string
}

// NewExecOpener parses commandLine. An empty line returns nil.
func NewExecOpener(commandLine string) *ExecOpener {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	return &ExecOpener{command: fields}
}

// Open starts the command without waiting for it to exit
func (o *ExecOpener) Open(url string) error {
	args := append(append([]string{}, o.command[1:]...), url)
	cmd := exec.Command(o.command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to run %s: %w", o.command[0], err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Opener %s exited: %v", o.command[0], err)
		}
	}()
	return nil
}
