// Command reason is a small CLI wrapping the bundled relation examples,
// for exploring the engine without writing Go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mk "github.com/obivan/reason/pkg/minikanren"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reason",
		Short: "Run bundled relational-programming demos",
	}
	root.AddCommand(newAppendCmd(), newMemberCmd(), newDistinctCmd())
	return root
}

func newAppendCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Enumerate ways to split [1 2 3 4] via Appendo",
		RunE: func(cmd *cobra.Command, args []string) error {
			whole := mk.L(1, 2, 3, 4)
			results := mk.RunBlock(n, []string{"l", "s"}, func(vs []*mk.Var) mk.Goal {
				return mk.Appendo(vs[0], vs[1], whole)
			})
			for _, r := range results {
				fmt.Println(mk.Pretty(r))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "take", mk.Unbounded, "number of answers to take (-1 for all)")
	return cmd
}

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "List every value q such that q is a member of [1 2 3]",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := mk.Run(mk.Unbounded, func(q *mk.Var) mk.Goal {
				return mk.Membero(q, mk.L(1, 2, 3))
			})
			for _, r := range results {
				fmt.Println(mk.Pretty(r))
			}
			return nil
		},
	}
	return cmd
}

func newDistinctCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distinct",
		Short: "Check whether [1 2 3] and [1 2 1] are pairwise distinct",
		RunE: func(cmd *cobra.Command, args []string) error {
			distinct := mk.Run(1, func(q *mk.Var) mk.Goal {
				return mk.ConjOf(
					mk.AllPermutedDistincto([]mk.Term{mk.A(1), mk.A(2), mk.A(3)}),
					mk.Identical(q, mk.A("yes")),
				)
			})
			notDistinct := mk.Run(1, func(q *mk.Var) mk.Goal {
				return mk.ConjOf(
					mk.AllPermutedDistincto([]mk.Term{mk.A(1), mk.A(2), mk.A(1)}),
					mk.Identical(q, mk.A("yes")),
				)
			})
			fmt.Printf("[1 2 3] distinct: %v\n", len(distinct) == 1)
			fmt.Printf("[1 2 1] distinct: %v\n", len(notDistinct) == 1)
			return nil
		},
	}
	return cmd
}
