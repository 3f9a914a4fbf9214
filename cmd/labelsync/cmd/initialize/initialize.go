// Package initialize provides the init command implementation.
package initialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelsync/cmd/application"
	"github.com/agentstation/labelsync/internal/embedded"
	"github.com/agentstation/labelsync/pkg/constants"
	"github.com/agentstation/labelsync/pkg/errors"
	"github.com/agentstation/labelsync/pkg/labels"
)

// Flags holds the init command's flag values.
type Flags struct {
	File     string
	Template string
	Force    bool
}

// addInitFlags registers the init command's flags and returns the bound values.
func addInitFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "path to write the label template to")
	cmd.Flags().StringVar(&flags.Template, "template", "default", "starter template to write")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite the file if it already exists")

	return flags
}

// ExecuteInit writes the chosen starter template to the target path.
func ExecuteInit(cmd *cobra.Command, app application.Application, flags *Flags) error {
	file := flags.File
	if file == "" {
		file = app.TemplateFile()
	}

	data, err := embedded.Template(flags.Template)
	if err != nil {
		return fmt.Errorf("unknown starter template %q: available: %s",
			flags.Template, strings.Join(embedded.Templates(), ", "))
	}

	// The shipped templates are tested, but count the labels for the
	// confirmation line the same way sync would read them.
	list, err := labels.ParseTemplate(data)
	if err != nil {
		return err
	}

	if !flags.Force {
		if _, err := os.Stat(file); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", file)
		}
	}

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}

	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", file, err)
	}

	cmd.Printf("Wrote %s with %d labels\n", file, len(list))
	return nil
}
