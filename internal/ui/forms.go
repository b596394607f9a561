package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

var errEmptyTitle = errors.New("title cannot be empty")

// validateTitle is the huh.Input validator for the title field, split
// out so it can be exercised without a terminal.
func validateTitle(s string) error {
	if s == "" {
		return errEmptyTitle
	}
	return nil
}

// CreateFormInput holds the raw strings a huh.Form binds its fields to.
// Any field already holding a non-empty value (pre-filled from an
// explicit flag) keeps its current value as the form's starting point —
// the form is a front end to the same create path the flags drive, not
// a parallel one.
type CreateFormInput struct {
	Title       string
	Description string
	IssueType   string
	Priority    string // "0".."4" from the select
	Assignee    string
	Labels      string // comma-separated
	Design      string
	Acceptance  string
	ExternalRef string
	Deps        string // comma-separated, "type:id" or bare "id" (defaults to blocks)
	Confirm     bool
}

// CreateFormValues is CreateFormInput parsed into the shapes the store
// layer expects, with defaulting applied. Kept as a pure function of
// CreateFormInput so it's testable without a terminal.
type CreateFormValues struct {
	Title       string
	Description string
	IssueType   string
	Priority    int
	Assignee    string
	Labels      []string
	Design      string
	Acceptance  string
	ExternalRef string
	Deps        []string
}

// ParseCreateFormInput splits the comma-separated label/dependency
// fields and parses the priority select's string value, defaulting to
// P2 if it doesn't parse (the select only ever offers "0".."4", but a
// caller constructing CreateFormInput directly might not).
func ParseCreateFormInput(in *CreateFormInput) *CreateFormValues {
	priority, err := strconv.Atoi(in.Priority)
	if err != nil {
		priority = 2
	}

	var labels []string
	for _, l := range strings.Split(in.Labels, ",") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	var deps []string
	for _, d := range strings.Split(in.Deps, ",") {
		if d = strings.TrimSpace(d); d != "" {
			deps = append(deps, d)
		}
	}

	return &CreateFormValues{
		Title:       in.Title,
		Description: in.Description,
		IssueType:   in.IssueType,
		Priority:    priority,
		Assignee:    in.Assignee,
		Labels:      labels,
		Design:      in.Design,
		Acceptance:  in.Acceptance,
		ExternalRef: in.ExternalRef,
		Deps:        deps,
	}
}

// CreateIssueForm runs an interactive, multi-group form for `bd create`
// when it's invoked with no title and stdin is a TTY, mirroring the full
// set of fields the command's flags already accept.
func CreateIssueForm(in *CreateFormInput) (*huh.Form, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(validateTitle),
			huh.NewText().
				Title("Description").
				Value(&in.Description),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("bug", "bug"),
					huh.NewOption("feature", "feature"),
					huh.NewOption("task", "task"),
					huh.NewOption("epic", "epic"),
					huh.NewOption("chore", "chore"),
				).
				Value(&in.IssueType),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("P0 (critical)", "0"),
					huh.NewOption("P1", "1"),
					huh.NewOption("P2", "2"),
					huh.NewOption("P3", "3"),
					huh.NewOption("P4 (lowest)", "4"),
				).
				Value(&in.Priority),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Assignee").
				Value(&in.Assignee),
			huh.NewInput().
				Title("Labels").
				Description("comma-separated").
				Value(&in.Labels),
			huh.NewInput().
				Title("External ref").
				Description("e.g. a tracker URL or ticket id").
				Value(&in.ExternalRef),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Design notes").
				Value(&in.Design),
			huh.NewText().
				Title("Acceptance criteria").
				Value(&in.Acceptance),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Dependencies").
				Description("comma-separated, \"type:id\" or bare id (defaults to blocks)").
				Value(&in.Deps),
			huh.NewConfirm().
				Title("Create this issue?").
				Value(&in.Confirm),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return nil, err
	}
	return form, nil
}
