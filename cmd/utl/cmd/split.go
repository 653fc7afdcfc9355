package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/utl/internal/linepipe"
	"github.com/kbukum/utl/list"
	"github.com/kbukum/utl/set"
	"github.com/kbukum/utl/strbuf"
	"github.com/kbukum/utl/validation"
)

func newSplitCmd(a *app) *cobra.Command {
	var match, pattern string
	var includeEmpty, unique bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split each line into spans",
		Long: `Split each line on any byte of --match, or on each non-overlapping
occurrence of --pattern. Text output prints one span per line. With
--unique only the first occurrence of each span within a line is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if appErr := validation.New().
				Exclusive(map[string]string{"match": match, "pattern": pattern}).
				Validate(); appErr != nil {
				return appErr
			}
			if !cmd.Flags().Changed("include-empty") {
				includeEmpty = a.cfg.Strings.IncludeEmpty
			}

			split := func(s *strbuf.String, sink strbuf.Sink) int {
				return s.SplitOnAll(pattern, includeEmpty, sink)
			}
			if pattern == "" {
				match = a.matchFlag(match)
				if appErr := validation.New().ASCII("match", match).Validate(); appErr != nil {
					return appErr
				}
				split = func(s *strbuf.String, sink strbuf.Sink) int {
					return s.SplitOnAny(match, includeEmpty, sink)
				}
			}

			return a.runLines(cmd, "split", func(l linepipe.Line) (record, int) {
				spans := list.New(list.Array, strbuf.TypeInfo)
				seen := set.New(set.HashSet, strbuf.TypeInfo)
				split(l.Text, func(sub *strbuf.String) {
					if unique && !seen.Insert(sub) {
						sub.Destroy()
						return
					}
					spans.PushBack(sub)
				})
				texts := list.Fold(spans, make([]string, 0, spans.Len()), func(acc []string, sub *strbuf.String) []string {
					return append(acc, sub.String())
				})
				return splitRecord{Line: l.Number, Count: spans.Len(), Spans: texts}, 0
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "set of separator bytes")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "separator byte sequence")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "keep empty spans (default from config)")
	cmd.Flags().BoolVar(&unique, "unique", false, "drop repeated spans")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var match, pattern string
	var last bool
	var offset int

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the index of the first or last match in each line",
		Long: `Print the byte index of the first match at or after --offset, or
with --last the final match starting at or before --offset. -1 means no
match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if appErr := validation.New().
				Exclusive(map[string]string{"match": match, "pattern": pattern}).
				Min("offset", offset, 0).
				Validate(); appErr != nil {
				return appErr
			}
			if pattern == "" {
				match = a.matchFlag(match)
				if appErr := validation.New().ASCII("match", match).Validate(); appErr != nil {
					return appErr
				}
			}
			fromEnd := !cmd.Flags().Changed("offset")

			find := func(s *strbuf.String) int {
				from := offset
				if last && fromEnd {
					from = s.Len()
				}
				switch {
				case pattern != "" && last:
					return s.FindLastOfAll(pattern, from)
				case pattern != "":
					return s.FindFirstOfAll(pattern, from)
				case last:
					return s.FindLastOfAny(match, from)
				default:
					return s.FindFirstOfAny(match, from)
				}
			}
			return a.runLines(cmd, "find", func(l linepipe.Line) (record, int) {
				i := find(l.Text)
				return findRecord{Line: l.Number, Index: i, Found: i != strbuf.NotFound}, 0
			})
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "set of bytes to look for")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "byte sequence to look for")
	cmd.Flags().BoolVar(&last, "last", false, "search backwards")
	cmd.Flags().IntVar(&offset, "offset", 0, "index to start from (default 0, or the line end with --last)")
	return cmd
}
