package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcospaterson/structure-me/internal/config"
	oerrors "github.com/marcospaterson/structure-me/internal/errors"
	"github.com/marcospaterson/structure-me/internal/layout"
	"github.com/marcospaterson/structure-me/internal/output"
	"github.com/marcospaterson/structure-me/internal/scaffold"
	"github.com/marcospaterson/structure-me/internal/templates"
)

func runScaffold(cmd *cobra.Command, opts *rootOptions) error {
	if opts.name == "" {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				"project name is required",
				"",
				"Pass the project name with --name <NAME>, e.g. structure-me --name demo",
			),
		}
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		NameFlag:    opts.name,
		VerboseFlag: opts.verbose,
		WorkDir:     opts.workDir,
		Config:      opts.cfg,
	})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	project := layout.NewProject(resolved.WorkDir.Value, resolved.Name)
	plan := layout.Plan(project.Name)
	set := templateSet(resolved)

	projLog := output.ProjectLogger(project.Name)
	projLog.Debug("resolved configuration",
		"root", project.Root,
		"work_dir_source", resolved.WorkDir.Source,
		"verbose", resolved.Verbose,
		"templates", set.Origin(),
	)

	if resolved.Verbose {
		if err := set.Check(); err != nil {
			projLog.Warn("sample content is incomplete; scaffolding stops at the first missing sample",
				"templates", set.Origin(), "error", err)
		}
	}

	projLog.Debug(fmt.Sprintf("creating %s...", project.Root))

	result, err := scaffold.Materialize(project.Root, plan, scaffold.Options{
		Verbose:   resolved.Verbose,
		Templates: set,
	})
	if err != nil {
		return materializeError(cmd.ErrOrStderr(), project, result, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created project %s in %s",
		output.StyleNoun.Render(project.Name), project.Root)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(project.Name, treeEntries(result)))

	return nil
}

// templateSet returns the samples configured for this run.
func templateSet(resolved *config.Resolved) templates.Set {
	if resolved.TemplateDir.Value != "" {
		return templates.FromDir(resolved.TemplateDir.Value)
	}
	return templates.Default()
}

// materializeError converts a scaffold failure into an exit error and reports
// what was left on disk to w.
func materializeError(w io.Writer, project layout.Project, result *scaffold.Result, err error) error {
	var serr *scaffold.Error
	if !errors.As(err, &serr) {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	if serr.Kind == scaffold.KindAlreadyExists {
		return oerrors.NewExitError(oerrors.NewAlreadyExistsError(project.Root), oerrors.ExitValidationError)
	}

	code := oerrors.ExitCodeFromError(err)
	detail := &oerrors.DetailError{
		Type:     serr.Kind.String(),
		Message:  err.Error(),
		Location: serr.Path,
		Context: map[string]string{
			"Created": fmt.Sprintf("%d directories, %d files", len(result.Dirs), len(result.Files)),
		},
		Cause: err,
	}
	if !result.Empty() {
		detail.Hint = fmt.Sprintf("Partially created files were left in place. Remove %s before retrying.", project.Root)
		output.ProjectLogger(project.Name).Warn("project left partially created",
			"root", project.Root,
			"dirs", len(result.Dirs),
			"files", len(result.Files),
			"exit", oerrors.ExitCodeName(code),
		)
		writeLeftBehind(w, project, result, serr.Path)
	}

	return oerrors.NewExitError(detail, code)
}

// writeLeftBehind lists every entry a failed run created, followed by the
// entry that failed.
func writeLeftBehind(w io.Writer, project layout.Project, result *scaffold.Result, failed string) {
	fmt.Fprintln(w, output.StyleSummary.Render("Left behind in "+project.Root+":"))
	for _, d := range result.Dirs {
		if d == layout.RootDir {
			continue
		}
		writeStatusLine(w, output.StatusCreated, d+"/")
	}
	for _, f := range result.Files {
		writeStatusLine(w, output.StatusCreated, f.Path)
	}

	rel, err := filepath.Rel(project.Root, failed)
	if err != nil {
		rel = failed
	}
	writeStatusLine(w, output.StatusFailed, filepath.ToSlash(rel))
}

// statusWidth is the length of the longest status, used to align paths.
const statusWidth = len(output.StatusCreated)

func writeStatusLine(w io.Writer, status, path string) {
	pad := strings.Repeat(" ", statusWidth-len(status))
	fmt.Fprintf(w, "  %s%s  %s\n", output.FormatStatus(status), pad, output.StyleDim.Render(path))
}

// dirDescriptions and fileDescriptions annotate the success tree.
var (
	dirDescriptions = map[string]string{
		"examples": "Runnable examples",
		"src":      "Package sources",
		"tests":    "Test suite",
		"data":     "Sample data",
	}
	fileDescriptions = map[string]string{
		"examples/example.py": "Example script",
		"src/__init__.py":     "Source package marker",
		"__init__.py":         "Package marker",
	}
)

// treeEntries converts a scaffold result into tree entries with descriptions.
func treeEntries(result *scaffold.Result) []output.TreeEntry {
	entries := make([]output.TreeEntry, 0, len(result.Dirs)+len(result.Files))
	for _, d := range result.Dirs {
		if d == layout.RootDir {
			continue
		}
		entries = append(entries, output.TreeEntry{Path: d, IsDir: true, Description: dirDescriptions[d]})
	}
	for _, f := range result.Files {
		desc := fileDescriptions[f.Path]
		if templates.IsTemplated(f.Path) {
			desc = templates.Describe(f.Path)
			if f.Populated {
				desc += " (sample)"
			}
		}
		entries = append(entries, output.TreeEntry{Path: f.Path, Description: desc})
	}
	return entries
}
