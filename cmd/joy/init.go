package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"joy/internal/project"
)

const defaultMainJoy = `(* Joy hello world *)
"Hello, Joy!" putchars .
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path|name]",
		Short: "Initialize a new Joy project",
		Long: `Initialize a Joy project by writing a joy.toml manifest and a main.joy
entry file. Without an argument the current directory is used; a
non-existing path is created`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}
	if st, statErr := os.Stat(target); statErr == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "joy-project"
	}

	if _, err = project.WriteDefault(target, name); err != nil {
		return err
	}
	if outer, nested, _ := project.FindProjectRoot(filepath.Dir(target)); nested {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: new project is nested inside %s\n", outer)
	}

	mainPath := filepath.Join(target, "main.joy")
	createdMain := false
	if _, statErr := os.Stat(mainPath); errors.Is(statErr, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainJoy), 0o600); err != nil {
			return fmt.Errorf("failed to write main.joy: %w", err)
		}
		createdMain = true
	}

	rel := target
	if r, relErr := filepath.Rel(wd, target); relErr == nil {
		rel = r
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized Joy project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintln(out, "  - main.joy")
	} else {
		fmt.Fprintln(out, "  - main.joy (existing)")
	}
	return nil
}
