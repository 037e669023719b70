package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/file-flow/internal/personnel"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// PersonnelSeedData is the JSON layout of a personnel seed file.
type PersonnelSeedData struct {
	Personnel []personnel.CreateCommand `json:"personnel"`
}

// SeedResult counts what a seed run did.
type SeedResult struct {
	Created int
	Skipped int
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	var file string
	personnelCmd := &cobra.Command{
		Use:   "personnel",
		Short: "Add personnel from the embedded list or --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadPersonnelSeed(file)
			if err != nil {
				return err
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			sys := personnel.New(s.infra.Database.Connection(), s.infra.Logger)
			result, err := seedPersonnel(cmd.Context(), sys, data)
			if err != nil {
				return err
			}

			cmd.Printf("personnel seeded: %d created, %d already present\n", result.Created, result.Skipped)
			return nil
		},
	}
	personnelCmd.Flags().StringVar(&file, "file", "", "External seed file (overrides embedded)")

	cmd.AddCommand(personnelCmd)
	return cmd
}

func loadPersonnelSeed(file string) (*PersonnelSeedData, error) {
	var (
		content []byte
		err     error
	)

	if file != "" {
		content, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/personnel.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data PersonnelSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// seedPersonnel adds each entry, skipping names that already exist so the
// command can be rerun.
func seedPersonnel(ctx context.Context, sys personnel.System, data *PersonnelSeedData) (SeedResult, error) {
	var result SeedResult
	for _, cmd := range data.Personnel {
		_, err := sys.Create(ctx, cmd)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, personnel.ErrDuplicate):
			result.Skipped++
		default:
			return result, fmt.Errorf("seed %q: %w", cmd.Name, err)
		}
	}
	return result, nil
}
