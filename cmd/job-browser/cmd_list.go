package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/browser"
	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/render"
	"github.com/ruminaider/job-browser/internal/schedule"
	"github.com/ruminaider/job-browser/internal/source"
)

var (
	listRole        string
	listTech        []string
	listExperience  string
	listMinCTC      float64
	listMaxCTC      float64
	listLimit       int
	listInteractive bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the listings matching the given filters",
	Example: `  job-browser list --role "Frontend Developer"
  job-browser list --tech MongoDB --tech Express --min-ctc 6
  job-browser list --source https://example.com/jobs.json --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	f := listCmd.Flags()
	f.StringVar(&listRole, "role", "", "only this role")
	f.StringSliceVar(&listTech, "tech", nil, "require every listed technology (repeatable)")
	f.StringVar(&listExperience, "experience", "", "only this experience label")
	f.Float64Var(&listMinCTC, "min-ctc", 0, "minimum compensation")
	f.Float64Var(&listMaxCTC, "max-ctc", 0, "maximum compensation")
	f.IntVar(&listLimit, "limit", 0, "print at most this many listings (0 prints all)")
	f.BoolVarP(&listInteractive, "interactive", "i", false, "pick filters in a form")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.stop()

	s, err := loadSession(cmd.Context(), a)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if s.Phase() == browser.PhaseNoResults {
		fmt.Fprintln(out, s.Message())
		return nil
	}

	st, err := listFilters(cmd, s.Controls())
	if err != nil {
		return err
	}
	if listInteractive {
		if st, err = pickFilters(s.Controls(), st); err != nil {
			return err
		}
	}
	s.Apply(st)

	// Pull batches until the limit is met or the set is exhausted.
	for !s.Exhausted() && (listLimit <= 0 || s.Counts().Displayed < listLimit) {
		if !s.Scrolled(0, 0, 0) {
			break
		}
	}

	printListing(out, s, listLimit)
	return nil
}

// loadSession fetches the records into a headless session. Delays run
// synchronously.
func loadSession(ctx context.Context, a *app) (*browser.Session, error) {
	s := browser.NewSession(browser.Options{
		Batch:     a.cfg.BatchOptions(),
		Render:    a.cfg.RenderOptions(),
		Scheduler: schedule.Immediate{},
		Logger:    a.logger,
		Metrics:   a.metrics,
	})
	if err := s.BeginLoad(); err != nil {
		return nil, err
	}

	timeout := a.cfg.Timeout
	if timeout <= 0 {
		timeout = source.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	records, err := a.source.Load(ctx)
	if err != nil {
		s.LoadFailed(err)
		return nil, fmt.Errorf("%s: %w", browser.MessageLoadFailure, err)
	}
	if err := s.Loaded(records); err != nil {
		return nil, err
	}
	return s, nil
}

// listFilters builds the filter state from flags, checking names against the
// loaded options.
func listFilters(cmd *cobra.Command, controls browser.Controls) (filter.State, error) {
	st := filter.Reset(controls.CTCBounds)

	if listRole != "" {
		if !slices.Contains(controls.Roles, listRole) {
			return st, apperr.InvalidInput(fmt.Sprintf("unknown role %q", listRole), nil)
		}
		st.Role = browser.OptionValue(listRole)
	}
	if listExperience != "" {
		if !slices.Contains(controls.Experience, listExperience) {
			return st, apperr.InvalidInput(fmt.Sprintf("unknown experience %q", listExperience), nil)
		}
		st.Experience = browser.OptionValue(listExperience)
	}
	for _, tech := range listTech {
		if !slices.Contains(controls.Technologies, tech) {
			return st, apperr.InvalidInput(fmt.Sprintf("unknown technology %q", tech), nil)
		}
		st.Technologies = append(st.Technologies, tech)
	}

	if cmd.Flags().Changed("min-ctc") {
		st.CTC = st.CTC.SetMin(listMinCTC)
	}
	if cmd.Flags().Changed("max-ctc") {
		st.CTC = st.CTC.SetMax(listMaxCTC)
	}
	return st, nil
}

// pickFilters lets the user adjust st in a form.
func pickFilters(controls browser.Controls, st filter.State) (filter.State, error) {
	role := browser.OptionLabel(st.Role)
	experience := browser.OptionLabel(st.Experience)
	techs := st.Technologies
	minCTC := strconv.FormatFloat(st.CTC.Min, 'f', -1, 64)
	maxCTC := strconv.FormatFloat(st.CTC.Max, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role").
				Options(huh.NewOptions(controls.Roles...)...).
				Value(&role),
			huh.NewMultiSelect[string]().
				Title("Technologies").
				Description("Listings must use every selected technology.").
				Options(huh.NewOptions(controls.Technologies...)...).
				Value(&techs),
			huh.NewSelect[string]().
				Title("Experience").
				Options(huh.NewOptions(controls.Experience...)...).
				Value(&experience),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum compensation").
				Description(fmt.Sprintf("Listings range from %s to %s.",
					render.FormatCTC(controls.CTCBounds.Min), render.FormatCTC(controls.CTCBounds.Max))).
				Value(&minCTC).
				Validate(validateCTC),
			huh.NewInput().
				Title("Maximum compensation").
				Value(&maxCTC).
				Validate(validateCTC),
		),
	)
	if err := form.Run(); err != nil {
		return st, err
	}

	ctc, err := parseCTCRange(minCTC, maxCTC)
	if err != nil {
		return st, err
	}
	return filter.State{
		Role:         browser.OptionValue(role),
		Technologies: techs,
		Experience:   browser.OptionValue(experience),
		CTC:          ctc,
	}, nil
}

// parseCTCRange converts the form's compensation inputs into a range,
// swapping them when entered in reverse.
func parseCTCRange(minCTC, maxCTC string) (filter.Range, error) {
	lo, err := parseCTC(minCTC)
	if err != nil {
		return filter.Range{}, apperr.InvalidInput(fmt.Sprintf("minimum compensation %q", minCTC), err)
	}
	hi, err := parseCTC(maxCTC)
	if err != nil {
		return filter.Range{}, apperr.InvalidInput(fmt.Sprintf("maximum compensation %q", maxCTC), err)
	}
	return filter.Range{Min: lo, Max: hi}.Normalize(), nil
}

func parseCTC(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("enter a number")
	}
	if v < 0 {
		return 0, errors.New("must not be negative")
	}
	return v, nil
}

func validateCTC(s string) error {
	_, err := parseCTC(s)
	return err
}

func printListing(w io.Writer, s *browser.Session, limit int) {
	if s.Phase() == browser.PhaseNoResults {
		fmt.Fprintln(w, s.Message())
		return
	}

	printed := 0
	for _, n := range s.Nodes() {
		if n.Phase == render.PhaseLeaving {
			continue
		}
		if limit > 0 && printed == limit {
			break
		}
		c := n.Card
		fmt.Fprintf(w, "[%d] %s  %s\n", c.ID, c.Title, c.Salary)
		meta := []string{c.Company, c.Location}
		if c.Type != "" {
			meta = append(meta, c.Type)
		}
		meta = append(meta, c.Experience)
		fmt.Fprintf(w, "    %s\n", strings.Join(meta, " · "))
		if tags := c.TagLine(); tags != "" {
			fmt.Fprintf(w, "    %s\n", tags)
		}
		fmt.Fprintln(w)
		printed++
	}

	counts := s.Counts()
	fmt.Fprintf(w, "Showing %s of %s jobs", humanize.Comma(int64(printed)), humanize.Comma(int64(counts.Filtered)))
	if counts.Filtered != counts.Total {
		fmt.Fprintf(w, " (%s total)", humanize.Comma(int64(counts.Total)))
	}
	fmt.Fprintf(w, ", %s\n", s.FilterSummary())
}
