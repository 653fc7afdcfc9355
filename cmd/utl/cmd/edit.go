package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/utl/internal/linepipe"
	"github.com/kbukum/utl/validation"
)

func newTrimCmd(a *app) *cobra.Command {
	var match string
	var left, right bool

	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Strip leading and trailing bytes from each line",
		Long: `Strip every byte found in the match set from both ends of each line.
Without --match the configured default set (whitespace) is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			match = a.matchFlag(match)
			if appErr := validation.New().
				ASCII("match", match).
				Custom(!(left && right), "left", "--left and --right are exclusive").
				Validate(); appErr != nil {
				return appErr
			}

			trim := func(l linepipe.Line) int { return l.Text.Trim(match) }
			switch {
			case left:
				trim = func(l linepipe.Line) int { return l.Text.TrimLeft(match) }
			case right:
				trim = func(l linepipe.Line) int { return l.Text.TrimRight(match) }
			}
			return a.runLines(cmd, "trim", func(l linepipe.Line) (record, int) {
				n := trim(l)
				return editRecord{Line: l.Number, Text: l.Text.String(), Removed: n}, n
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "set of bytes to strip")
	cmd.Flags().BoolVar(&left, "left", false, "strip the start of the line only")
	cmd.Flags().BoolVar(&right, "right", false, "strip the end of the line only")
	return cmd
}

func newGroupCmd(a *app) *cobra.Command {
	var match string
	var replace bool

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Collapse runs of matching bytes",
		Long: `Collapse every run of bytes from the match set to a single byte.
The kept byte is the first of the run, or the first byte of the match set
with --replace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			match = a.matchFlag(match)
			if appErr := validation.New().ASCII("match", match).Validate(); appErr != nil {
				return appErr
			}
			return a.runLines(cmd, "group", func(l linepipe.Line) (record, int) {
				n := l.Text.Group(match, replace)
				return editRecord{Line: l.Number, Text: l.Text.String(), Removed: n}, n
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "set of bytes to group")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace each run with the first byte of the match set")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var match, pattern string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete bytes or a pattern from each line",
		Long: `Delete every byte in --match, or every non-overlapping occurrence
of --pattern, from each line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if appErr := validation.New().
				Exclusive(map[string]string{"match": match, "pattern": pattern}).
				Validate(); appErr != nil {
				return appErr
			}

			remove := func(l linepipe.Line) int { return l.Text.RemoveAll(pattern) }
			if pattern == "" {
				match = a.matchFlag(match)
				if appErr := validation.New().ASCII("match", match).Validate(); appErr != nil {
					return appErr
				}
				remove = func(l linepipe.Line) int { return l.Text.RemoveAny(match) }
			}
			return a.runLines(cmd, "remove", func(l linepipe.Line) (record, int) {
				n := remove(l)
				return editRecord{Line: l.Number, Text: l.Text.String(), Removed: n}, n
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "set of bytes to delete")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "byte sequence to delete")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var pattern, with string

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace every occurrence of a pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if appErr := validation.New().Required("pattern", pattern).Validate(); appErr != nil {
				return appErr
			}
			return a.runLines(cmd, "replace", func(l linepipe.Line) (record, int) {
				before := l.Text.Len()
				n := l.Text.ReplaceAll(pattern, with)
				return editRecord{Line: l.Number, Text: l.Text.String(), Replaced: n}, max(before-l.Text.Len(), 0)
			})
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "byte sequence to replace (required)")
	cmd.Flags().StringVarP(&with, "with", "w", "", "replacement text")
	return cmd
}

var caseOps = []string{"upper", "lower", "reverse"}

func newCaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "case upper|lower|reverse",
		Short:     "Change ASCII case or reverse each line",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: caseOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			return a.runLines(cmd, "case."+op, func(l linepipe.Line) (record, int) {
				switch op {
				case "upper":
					l.Text.ToUpper()
				case "lower":
					l.Text.ToLower()
				default:
					l.Text.Reverse()
				}
				return editRecord{Line: l.Number, Text: l.Text.String()}, 0
			})
		},
	}
}
