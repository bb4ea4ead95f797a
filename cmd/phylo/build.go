package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/phylo/config"
	"github.com/katalvlaran/phylo/guidetree"
)

// buildCmd builds a guide tree from a pairwise score table and prints it
// as a Newick string.
var buildCmd = &cobra.Command{
	Use:   "build <scores.tsv>",
	Short: "Build a guide tree from a table of pairwise scores",
	Long: `Build a guide tree from a tab-separated table of pairwise similarity
scores. Each row holds one unordered sequence pair in the fixed
enumeration order (0,1),(0,2),…,(N-2,N-1):

	idA	idB	score	maxScore	minScore

The tree is printed in Newick notation; --matrices additionally prints
the normalized distance matrix and the raw score matrix.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("matrices", false, "print the distance and score matrices")
	buildCmd.Flags().Int("precision", 4, "decimal places for printed distances")
	_ = viper.BindPFlag("matrices", buildCmd.Flags().Lookup("matrices"))
	_ = viper.BindPFlag("precision", buildCmd.Flags().Lookup("precision"))
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	seqs, scorers, err := parseScores(f)
	if err != nil {
		return err
	}

	tree, err := guidetree.New(seqs, scorers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tree.Newick())
	if cfg.Matrices {
		printMatrices(out, tree, cfg.Precision)
	}

	return nil
}

// printMatrices writes the normalized distance matrix and the raw score
// matrix as tab-separated blocks.
func printMatrices(w io.Writer, tree *guidetree.GuideTree, precision int) {
	fmt.Fprintln(w, "# distances")
	for _, row := range tree.DistanceMatrix() {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, strconv.FormatFloat(v, 'f', precision, 64))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "# scores")
	for _, row := range tree.ScoreMatrix() {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprintln(w)
	}
}
