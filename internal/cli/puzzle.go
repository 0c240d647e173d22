package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Number grid commands",
	}

	cmd.AddCommand(newPuzzleGenerateCmd())
	cmd.AddCommand(newPuzzleSolveCmd())

	return cmd
}

func newPuzzleGenerateCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"difficulty": difficulty}
			var result Puzzle

			if err := client.Post("/api/v1/puzzles", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")

	return cmd
}

func newPuzzleSolveCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle from a JSON grid",
		Long: `Solve reads a 9x9 grid as a JSON array of arrays (0 for empty cells)
from the given file, or from stdin when no file is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := readGrid(file)
			if err != nil {
				return err
			}

			req := map[string]any{"cells": cells}
			var result Solution

			if err := client.Post("/api/v1/puzzles/solve", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON grid file (default: stdin)")

	return cmd
}

func readGrid(file string) ([][]int, error) {
	var data []byte
	var err error

	if file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}

	var cells [][]int
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("failed to parse grid: %w", err)
	}
	return cells, nil
}
